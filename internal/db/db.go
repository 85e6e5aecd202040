// Package db provides PostgreSQL database access for the hosted provider store.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/care-finder/internal/geo"
	"github.com/jonathan/care-finder/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ProviderFilter narrows ListProviders results. Empty fields are no-ops:
// Search matches the provider name case-insensitively, Category matches the
// structural type exactly, Specialty matches any specialty entry.
type ProviderFilter struct {
	Search    string
	Category  string
	Specialty string
}

// UpsertProvider inserts a raw provider record, updating it in place when a
// record with the same name already exists. Returns the row id.
func (db *DB) UpsertProvider(ctx context.Context, p types.RawProvider) (uuid.UUID, error) {
	addressJSON, err := json.Marshal(p.Address)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal address: %w", err)
	}

	var orgName *string
	if p.ParentOrganization != nil {
		orgName = &p.ParentOrganization.Name
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO healthcare_providers
		   (name, type, address, telephone, parent_organization, medical_specialty,
		    service_type, website, accepts_insurance, network, accepts_medicaid, accepts_medicare)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (name) DO UPDATE SET
		   type = $2, address = $3, telephone = $4, parent_organization = $5,
		   medical_specialty = $6, service_type = $7, website = $8,
		   accepts_insurance = $9, network = $10, accepts_medicaid = $11,
		   accepts_medicare = $12, updated_at = NOW()
		 RETURNING id`,
		p.Name, p.Type, addressJSON, []string(p.Telephone), orgName, p.MedicalSpecialty,
		serviceNames(p), p.SameAs, p.AcceptsInsurance, nilIfEmpty(p.Network),
		p.AcceptsMedicaid, p.AcceptsMedicare,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert provider %q: %w", p.Name, err)
	}
	return id, nil
}

// ListProviders returns raw provider records ordered by name, narrowed by the
// filter: ILIKE on name, exact structural type, specialty containment
func (db *DB) ListProviders(ctx context.Context, filter ProviderFilter) ([]types.RawProvider, error) {
	query := `SELECT name, type, address, telephone, parent_organization, medical_specialty,
	                 service_type, website, accepts_insurance, network, accepts_medicaid, accepts_medicare
	          FROM healthcare_providers`

	var conditions []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		conditions = append(conditions, "name ILIKE "+arg("%"+filter.Search+"%"))
	}
	if filter.Category != "" && filter.Category != "all" {
		conditions = append(conditions, "type = "+arg(filter.Category))
	}
	if filter.Specialty != "" && filter.Specialty != "all" {
		conditions = append(conditions, arg(filter.Specialty)+" = ANY(medical_specialty)")
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY name"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	defer rows.Close()

	var providers []types.RawProvider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read providers: %w", err)
	}
	return providers, nil
}

// GetProviderByName retrieves one raw provider record, or nil when absent
func (db *DB) GetProviderByName(ctx context.Context, name string) (*types.RawProvider, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, type, address, telephone, parent_organization, medical_specialty,
		        service_type, website, accepts_insurance, network, accepts_medicaid, accepts_medicare
		 FROM healthcare_providers WHERE name = $1`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider %q: %w", name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get provider %q: %w", name, err)
		}
		return nil, nil
	}
	p, err := scanProvider(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateCoordinates stores resolved coordinates for a provider
func (db *DB) UpdateCoordinates(ctx context.Context, name string, coords geo.Coordinates) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE healthcare_providers
		 SET latitude = $1, longitude = $2, geocode_accuracy = $3, updated_at = NOW()
		 WHERE name = $4`,
		coords.Latitude, coords.Longitude, coords.Accuracy, name,
	)
	if err != nil {
		return fmt.Errorf("failed to update coordinates for %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("provider %q not found", name)
	}
	return nil
}

// CountProviders returns the total number of stored provider records
func (db *DB) CountProviders(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM healthcare_providers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count providers: %w", err)
	}
	return count, nil
}

func scanProvider(rows pgx.Rows) (types.RawProvider, error) {
	var (
		p           types.RawProvider
		addressJSON []byte
		telephone   []string
		orgName     *string
		website     *string
		network     *string
	)

	err := rows.Scan(&p.Name, &p.Type, &addressJSON, &telephone, &orgName,
		&p.MedicalSpecialty, &p.ServiceType, &website, &p.AcceptsInsurance,
		&network, &p.AcceptsMedicaid, &p.AcceptsMedicare)
	if err != nil {
		return types.RawProvider{}, fmt.Errorf("failed to scan provider: %w", err)
	}

	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &p.Address); err != nil {
			return types.RawProvider{}, fmt.Errorf("failed to decode address for %q: %w", p.Name, err)
		}
	}
	p.Telephone = telephone
	if orgName != nil {
		p.ParentOrganization = &types.Organization{Name: *orgName}
	}
	if website != nil {
		p.SameAs = *website
	}
	if network != nil {
		p.Network = *network
	}
	return p, nil
}

func serviceNames(p types.RawProvider) []string {
	services := make([]string, 0, len(p.ServiceType)+len(p.HasPOS))
	services = append(services, p.ServiceType...)
	for _, svc := range p.HasPOS {
		services = append(services, svc.Name)
	}
	return services
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
