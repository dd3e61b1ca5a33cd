package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_CreatesDatabaseAndSchema(t *testing.T) {
	store := newTestStore(t)
	assert.FileExists(t, store.Path())

	var version int
	row := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations")
	require.NoError(t, row.Scan(&version))
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	row := second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count, "migrations must not reapply")
}

func TestBeginRun_IsIdempotentPerRunID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.BeginRun(ctx, "run-1", "Lopez v Oakwood"))
	require.NoError(t, store.BeginRun(ctx, "run-1", "Lopez v Oakwood"))

	var count int
	row := store.db.QueryRow("SELECT COUNT(*) FROM runs WHERE id = ?", "run-1")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}

func TestTracePhase_PersistsPayloadAsJSON(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.BeginRun(ctx, "run-1", "Lopez v Oakwood"))
	err := store.TracePhase(ctx, driven.PhaseTrace{
		RunID:        "run-1",
		Seq:          4,
		Phase:        "profile",
		DatasetIndex: 1,
		DocType:      domain.DocTypeSROGs,
		Payload:      map[string]int{"totalCount": 1502},
	})
	require.NoError(t, err)

	var phase, docType, payload string
	var seq, datasetIndex int
	row := store.db.QueryRow(`
		SELECT seq, phase, dataset_index, doc_type, payload
		FROM phase_traces WHERE run_id = ?
	`, "run-1")
	require.NoError(t, row.Scan(&seq, &phase, &datasetIndex, &docType, &payload))

	assert.Equal(t, 4, seq)
	assert.Equal(t, "profile", phase)
	assert.Equal(t, 1, datasetIndex)
	assert.Equal(t, "SROGs", docType)
	assert.JSONEq(t, `{"totalCount": 1502}`, payload)
}

func TestTracePhase_DuplicateSequenceIsRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	trace := driven.PhaseTrace{RunID: "run-1", Seq: 1, Phase: "normalize"}
	require.NoError(t, store.TracePhase(ctx, trace))
	assert.Error(t, store.TracePhase(ctx, trace), "(run_id, seq) is the primary key")
}
