package db

import (
	"context"
	"fmt"
)

const providersSchema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS healthcare_providers (
	id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name                TEXT NOT NULL UNIQUE,
	type                TEXT NOT NULL,
	address             JSONB,
	telephone           TEXT[],
	parent_organization TEXT,
	medical_specialty   TEXT[],
	service_type        TEXT[],
	website             TEXT,
	accepts_insurance   TEXT[],
	network             TEXT,
	accepts_medicaid    BOOLEAN,
	accepts_medicare    BOOLEAN,
	latitude            DOUBLE PRECISION,
	longitude           DOUBLE PRECISION,
	geocode_accuracy    TEXT,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_providers_type ON healthcare_providers (type);
CREATE INDEX IF NOT EXISTS idx_providers_specialty ON healthcare_providers USING GIN (medical_specialty);
`

// EnsureSchema creates the provider table and its indexes if they do not
// already exist. Safe to call on every startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, providersSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
