package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/linestore"
	"github.com/osse101/FactoryPlanner_Go/internal/server"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StorageBackend: config.StorageBackendFile,
		DataFile:       filepath.Join(t.TempDir(), "lines", "production_lines.json"),
	}
}

func TestInitializeStorage_File(t *testing.T) {
	storage, err := InitializeStorage(context.Background(), fileConfig(t))
	require.NoError(t, err)

	assert.IsType(t, &linestore.Store{}, storage.Lines)
	assert.Equal(t, config.StorageBackendFile, storage.Backend)
	assert.NoError(t, storage.Lines.Ping(context.Background()), "a missing file is an empty store")

	storage.Close()
	storage.Close()
}

func TestInitializeStorage_UnknownBackend(t *testing.T) {
	_, err := InitializeStorage(context.Background(), &config.Config{StorageBackend: "sqlite"})
	assert.ErrorContains(t, err, ErrMsgUnknownStorageBackend)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		cat, err := LoadCatalog(&config.Config{})
		require.NoError(t, err)
		assert.NotEmpty(t, cat.Recipes())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadCatalog(&config.Config{CatalogDir: filepath.Join(t.TempDir(), "nope")})
		assert.ErrorContains(t, err, ErrMsgFailedLoadCatalog)
	})
}

func TestGracefulShutdown(t *testing.T) {
	storage, err := InitializeStorage(context.Background(), fileConfig(t))
	require.NoError(t, err)
	srv := server.NewServer(server.Options{Port: 0}, nil, nil, storage.Lines)

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, Storage: storage})
	})
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
