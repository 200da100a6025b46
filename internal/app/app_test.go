package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"marketplace/internal/config"
	"marketplace/internal/seed"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"
)

func TestModuleGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Module))
}

func TestBuildSeedDefault(t *testing.T) {
	batch, err := buildSeed("")

	require.NoError(t, err)
	require.Len(t, batch.Users, 6)
	require.Len(t, batch.Offers, 6)
	require.Len(t, batch.Orders, 5)
}

func TestBuildSeedInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("offers:\n  - {id: 1, order_id: 1}\n"), 0o600))

	_, err := buildSeed(path)

	require.ErrorContains(t, err, "invalid seed data")
	require.ErrorContains(t, err, "executor_id")
}

func TestBuildSeedMissingFile(t *testing.T) {
	_, err := buildSeed(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
}

type schemaCalls struct {
	calls     []string
	upErr     error
	resetErr  error
	lastBatch *seed.Batch
}

func (s *schemaCalls) Up(ctx context.Context) error {
	s.calls = append(s.calls, "up")
	return s.upErr
}

func (s *schemaCalls) Recreate(ctx context.Context) error {
	s.calls = append(s.calls, "recreate")
	return s.resetErr
}

func (s *schemaCalls) Load(ctx context.Context, b *seed.Batch) error {
	s.calls = append(s.calls, "load")
	s.lastBatch = b
	return nil
}

func TestPrepareSchemaResetsThenSeeds(t *testing.T) {
	s := &schemaCalls{}

	err := prepareSchema(t.Context(), &config.Config{ResetOnStart: true}, s, s, zaptest.NewLogger(t))

	require.NoError(t, err)
	require.Equal(t, []string{"recreate", "load"}, s.calls)
	require.Len(t, s.lastBatch.Users, 6)
	require.Len(t, s.lastBatch.Orders, 5)
}

func TestPrepareSchemaWithoutReset(t *testing.T) {
	s := &schemaCalls{}

	err := prepareSchema(t.Context(), &config.Config{ResetOnStart: false}, s, s, zaptest.NewLogger(t))

	require.NoError(t, err)
	require.Equal(t, []string{"up"}, s.calls)
}

func TestPrepareSchemaBrokenSeedKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("orders:\n  - {id: 1, name: n}\n"), 0o600))
	s := &schemaCalls{}

	err := prepareSchema(t.Context(), &config.Config{ResetOnStart: true, SeedFile: path}, s, s, zaptest.NewLogger(t))

	require.ErrorContains(t, err, "invalid seed data")
	require.Empty(t, s.calls)
}

func TestPrepareSchemaResetFailureSkipsSeed(t *testing.T) {
	s := &schemaCalls{resetErr: errors.New("permission denied")}

	err := prepareSchema(t.Context(), &config.Config{ResetOnStart: true}, s, s, zaptest.NewLogger(t))

	require.ErrorContains(t, err, "permission denied")
	require.Equal(t, []string{"recreate"}, s.calls)
}
