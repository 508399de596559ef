package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/pricescan/catalog-service/internal/catalog"
)

// Snapshot files carry one offer per row under this header. Column
// order is free; matching is by name, case-insensitive.
var snapshotColumns = []string{
	"id", "name", "price", "barcode", "store_name",
	"latitude", "longitude", "updated_at", "rating", "image_url",
}

// LoadSnapshotFile reads a full product snapshot from a CSV or XLSX
// file, dispatching on the extension. Rows that fail to parse are
// skipped with a warning; a file with only bad rows yields an empty
// snapshot, not an error.
func LoadSnapshotFile(path string) ([]catalog.Product, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot file: %w", err)
		}
		defer f.Close()
		return parseCSVSnapshot(f)
	case ".xlsx":
		return parseXLSXSnapshot(path)
	default:
		return nil, fmt.Errorf("unsupported snapshot format: %s", filepath.Ext(path))
	}
}

func parseCSVSnapshot(r io.Reader) ([]catalog.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rowsToProducts(rows)
}

func parseXLSXSnapshot(path string) ([]catalog.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rowsToProducts(rows)
}

func rowsToProducts(rows [][]string) ([]catalog.Product, error) {
	if len(rows) == 0 {
		return []catalog.Product{}, nil
	}

	columns, err := buildColumnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	logger := log.With().Str("component", "snapshot_file").Logger()
	products := make([]catalog.Product, 0, len(rows)-1)
	skipped := 0

	for i, row := range rows[1:] {
		p, err := rowToProduct(row, columns)
		if err != nil {
			logger.Warn().Err(err).Int("row", i+2).Msg("Skipping bad snapshot row")
			skipped++
			continue
		}
		products = append(products, p)
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Int("loaded", len(products)).Msg("Snapshot loaded with bad rows")
	}
	return products, nil
}

func buildColumnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "name", "price", "store_name"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("snapshot header missing required column %q", required)
		}
	}
	return columns, nil
}

func rowToProduct(row []string, columns map[string]int) (catalog.Product, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	price, err := strconv.ParseFloat(cell("price"), 64)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("bad price %q: %w", cell("price"), err)
	}

	p := catalog.Product{
		ID:        cell("id"),
		Name:      cell("name"),
		Price:     price,
		Barcode:   cell("barcode"),
		StoreName: cell("store_name"),
		ImageURL:  cell("image_url"),
	}
	if p.ID == "" || p.Name == "" {
		return catalog.Product{}, fmt.Errorf("missing id or name")
	}

	if v := cell("updated_at"); v != "" {
		p.UpdatedAt, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return catalog.Product{}, fmt.Errorf("bad updated_at %q: %w", v, err)
		}
	}
	if v := cell("rating"); v != "" {
		p.Rating, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return catalog.Product{}, fmt.Errorf("bad rating %q: %w", v, err)
		}
	}

	latStr, lonStr := cell("latitude"), cell("longitude")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return catalog.Product{}, fmt.Errorf("bad coordinates %q,%q", latStr, lonStr)
		}
		p.StoreLocation = &catalog.LatLng{Latitude: lat, Longitude: lon}
	}

	return p, nil
}
