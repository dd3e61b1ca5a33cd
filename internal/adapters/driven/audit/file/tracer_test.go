package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
)

func TestNewTracer_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audit", "run-1")

	tracer, err := NewTracer(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, tracer.Dir())
	assert.DirExists(t, dir)
}

func TestTracePhase_WritesSequencedDump(t *testing.T) {
	dir := t.TempDir()
	tracer, err := NewTracer(dir)
	require.NoError(t, err)

	payload := map[string]int{"datasets": 4}
	err = tracer.TracePhase(context.Background(), driven.PhaseTrace{
		RunID: "run-1",
		Seq:   2,
		Phase: "datasets",
	})
	require.NoError(t, err)

	err = tracer.TracePhase(context.Background(), driven.PhaseTrace{
		RunID:        "run-1",
		Seq:          3,
		Phase:        "flags",
		DatasetIndex: 1,
		Payload:      payload,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "02-datasets.json"))

	data, err := os.ReadFile(filepath.Join(dir, "03-flags-ds1.json"))
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, payload, got)
}

func TestTracePhase_DocTypeSuffixIsLowercased(t *testing.T) {
	dir := t.TempDir()
	tracer, err := NewTracer(dir)
	require.NoError(t, err)

	err = tracer.TracePhase(context.Background(), driven.PhaseTrace{
		RunID:        "run-1",
		Seq:          5,
		Phase:        "sets",
		DatasetIndex: 1,
		DocType:      domain.DocTypeSROGs,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "05-sets-ds1-srogs.json"))
}
