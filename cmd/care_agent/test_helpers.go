package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the care_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "care_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeTestSnapshot writes a minimal valid provider snapshot and returns its path
func writeTestSnapshot(t *testing.T) string {
	t.Helper()

	content := `{
		"@context": "https://schema.org",
		"@type": "ItemList",
		"name": "Test Directory",
		"containsPlace": [
			{
				"@type": "Hospital",
				"name": "Test General Hospital",
				"address": {"streetAddress": "1 Hospital Dr", "addressLocality": "Utica", "addressRegion": "NY"},
				"telephone": "(315) 555-0100",
				"medicalSpecialty": ["Emergency Medicine"]
			},
			{
				"@type": "Physician",
				"name": "Rome Family Practice",
				"address": {"addressLocality": "Rome", "addressRegion": "NY"},
				"medicalSpecialty": ["Family Medicine"]
			}
		]
	}`

	path := filepath.Join(t.TempDir(), "providers.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test snapshot: %v", err)
	}
	return path
}
