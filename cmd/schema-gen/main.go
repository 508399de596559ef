// Schema Generator
//
// Generates JSON Schema files from Go types so the mobile client can
// validate API payloads against the same contract the service enforces.
//
// Usage:
//
//	go run cmd/schema-gen/main.go
//
// Output:
//
//	docs/schemas/catalog.json
//	docs/schemas/basket.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/pricescan/catalog-service/internal/handlers"
)

// SchemaGroup represents a group of related schemas
type SchemaGroup struct {
	Name   string
	Types  []any
	Output string
}

func main() {
	outputDir := "docs/schemas"

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	groups := []SchemaGroup{
		{
			Name: "catalog",
			Types: []any{
				handlers.ListOffersResponse{},
				handlers.GetOffersResponse{},
				handlers.SuggestResponse{},
				handlers.UpsertProductRequest{},
			},
			Output: filepath.Join(outputDir, "catalog.json"),
		},
		{
			Name: "basket",
			Types: []any{
				handlers.AddSelectionRequest{},
				handlers.SelectionResponse{},
				handlers.CheapestStoresResponse{},
			},
			Output: filepath.Join(outputDir, "basket.json"),
		},
	}

	reflector := &jsonschema.Reflector{
		DoNotReference: false,
	}

	for _, group := range groups {
		schemas := make(map[string]*jsonschema.Schema, len(group.Types))
		for _, t := range group.Types {
			schema := reflector.Reflect(t)
			name := fmt.Sprintf("%T", t)
			schemas[name] = schema
		}

		data, err := json.MarshalIndent(schemas, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to marshal %s schemas: %v\n", group.Name, err)
			os.Exit(1)
		}

		if err := os.WriteFile(group.Output, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", group.Output, err)
			os.Exit(1)
		}

		fmt.Printf("wrote %s (%d types)\n", group.Output, len(group.Types))
	}
}
