package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCommand_MissingSnapshotFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "search", "--query", "hospital")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestSearchCommand_InvalidSnapshotFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "search", "--snapshot", "/nonexistent/providers.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load")
}

func TestSearchCommand_MatchesByLocation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	snapshotPath := writeTestSnapshot(t)

	cmd := exec.Command(binaryPath, "search", "--snapshot", snapshotPath, "--location", "Rome")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Rome Family Practice")
	assert.NotContains(t, string(output), "Test General Hospital")
}

func TestSearchCommand_NoMatches(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	snapshotPath := writeTestSnapshot(t)

	cmd := exec.Command(binaryPath, "search", "--snapshot", snapshotPath, "--query", "dermatology")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "No providers found")
}
