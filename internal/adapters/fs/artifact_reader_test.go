package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
)

func TestArtifactReader_ListArtifacts(t *testing.T) {
	root := t.TempDir()
	artifacts := filepath.Join(root, "artifacts")
	require.NoError(t, os.MkdirAll(artifacts, 0755))

	files := map[string]string{
		"Token.bin":    "6001\n",
		"Registry.bin": "0x6002",
		"IToken.bin":   "",
		"Token.abi":    "[]",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(artifacts, name), []byte(content), 0644))
	}

	reader := NewArtifactReaderAdapter(&config.RuntimeConfig{ProjectRoot: root})
	got, err := reader.ListArtifacts(context.Background(), "artifacts")
	require.NoError(t, err)

	assert.Equal(t, []models.ContractIdentity{
		{Name: "Registry", ByteCode: "0x6002"},
		{Name: "Token", ByteCode: "0x6001"},
	}, got)
}

func TestArtifactReader_MissingDirectory(t *testing.T) {
	reader := NewArtifactReaderAdapter(&config.RuntimeConfig{ProjectRoot: t.TempDir()})

	got, err := reader.ListArtifacts(context.Background(), "artifacts")
	require.NoError(t, err)
	assert.Empty(t, got)
}
