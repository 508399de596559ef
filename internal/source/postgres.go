// Package source provides catalog store collaborators: the backends
// that supply product snapshots this service computes over.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pricescan/catalog-service/internal/catalog"
)

// PostgresSource reads and writes catalog records in Postgres. The
// computation layer never touches it directly; it only sees the
// snapshots the source emits.
type PostgresSource struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresSource creates a source backed by the given pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{
		pool:   pool,
		logger: log.With().Str("component", "postgres_source").Logger(),
	}
}

// LoadSnapshot reads the full working set: every product joined with
// its store's location. Products and stores are loaded concurrently.
func (s *PostgresSource) LoadSnapshot(ctx context.Context) ([]catalog.Product, error) {
	var (
		products  []catalog.Product
		locations map[string]catalog.LatLng
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.loadProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		locations, err = s.loadStoreLocations(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range products {
		if loc, ok := locations[products[i].StoreName]; ok {
			l := loc
			products[i].StoreLocation = &l
		}
	}

	return products, nil
}

func (s *PostgresSource) loadProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, price, COALESCE(barcode, ''), store_name,
		       updated_at, rating, COALESCE(image_url, '')
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Barcode,
			&p.StoreName, &p.UpdatedAt, &p.Rating, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading products: %w", err)
	}
	return products, nil
}

func (s *PostgresSource) loadStoreLocations(ctx context.Context) (map[string]catalog.LatLng, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, latitude, longitude
		FROM stores
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	locations := make(map[string]catalog.LatLng)
	for rows.Next() {
		var name string
		var loc catalog.LatLng
		if err := rows.Scan(&name, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		locations[name] = loc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading stores: %w", err)
	}
	return locations, nil
}

// GetProductByID fetches a single product. The boolean is false when no
// such product exists; absence is not an error.
func (s *PostgresSource) GetProductByID(ctx context.Context, id string) (catalog.Product, bool, error) {
	var p catalog.Product
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, price, COALESCE(barcode, ''), store_name,
		       updated_at, rating, COALESCE(image_url, '')
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.Barcode,
		&p.StoreName, &p.UpdatedAt, &p.Rating, &p.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, false, nil
	}
	if err != nil {
		return catalog.Product{}, false, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return p, true, nil
}

// UpsertProduct inserts or replaces a product record.
func (s *PostgresSource) UpsertProduct(ctx context.Context, p catalog.Product) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO products (id, name, price, barcode, store_name, updated_at, rating, image_url)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			barcode = EXCLUDED.barcode,
			store_name = EXCLUDED.store_name,
			updated_at = EXCLUDED.updated_at,
			rating = EXCLUDED.rating,
			image_url = EXCLUDED.image_url
	`, p.ID, p.Name, p.Price, p.Barcode, p.StoreName, p.UpdatedAt, p.Rating, p.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
	}
	return nil
}

// DeleteProduct removes a product record. Deleting a missing product is
// not an error.
func (s *PostgresSource) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// Poller turns the pull-based source into the push-based snapshot
// stream the holder consumes: a full reload on every tick.
type Poller struct {
	source   *PostgresSource
	interval time.Duration
	logger   zerolog.Logger
}

// NewPoller creates a poller emitting a fresh snapshot every interval.
func NewPoller(source *PostgresSource, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		interval: interval,
		logger:   log.With().Str("component", "snapshot_poller").Logger(),
	}
}

// Run loads a snapshot immediately and then on every tick, sending each
// to out until the context is cancelled. Load failures are logged and
// the previous snapshot stays in effect.
func (p *Poller) Run(ctx context.Context, out chan<- []catalog.Product) {
	p.emit(ctx, out)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Snapshot poller stopped")
			return
		case <-ticker.C:
			p.emit(ctx, out)
		}
	}
}

func (p *Poller) emit(ctx context.Context, out chan<- []catalog.Product) {
	started := time.Now()
	products, err := p.source.LoadSnapshot(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed to load snapshot")
		return
	}

	select {
	case out <- products:
		p.logger.Debug().
			Int("products", len(products)).
			Dur("duration", time.Since(started)).
			Msg("Snapshot emitted")
	case <-ctx.Done():
	}
}
