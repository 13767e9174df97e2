package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framelightapp/framelight-server/internal/search"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// testEnv bundles the shared dependencies the services need.
type testEnv struct {
	store     *store.Store
	search    *SearchService
	validator *validation.Validator
	logger    *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	idx, err := search.NewIndex(search.Options{
		DataPath: t.TempDir(),
		Logger:   logger,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	return &testEnv{
		store:     st,
		search:    NewSearchService(idx, st, logger),
		validator: validation.New(),
		logger:    logger,
	}
}
