package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// The CLI tests exec a prebuilt binary; a few want DATABASE_URL or
// MAPBOX_ACCESS_TOKEN, so pick up a local .env when one exists
func TestMain(m *testing.M) {
	_ = godotenv.Load()

	os.Exit(m.Run())
}
