// Package file provides a file-based audit tracer that persists each
// pipeline phase output as a numbered JSON dump, mirroring the debug
// files the reference tooling produced.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
)

// Ensure Tracer implements the interface.
var _ driven.Tracer = (*Tracer)(nil)

// Tracer writes one JSON file per phase trace into a dump directory.
type Tracer struct {
	dir string
}

// NewTracer creates a tracer writing into dir, creating it if needed.
func NewTracer(dir string) (*Tracer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating audit directory: %w", err)
	}
	return &Tracer{dir: dir}, nil
}

// TracePhase writes the payload as an indented JSON dump. Filenames are
// sequence-prefixed so a directory listing reads in pipeline order:
// "03-flags-ds1.json", "05-sets-ds1-srogs.json".
func (t *Tracer) TracePhase(_ context.Context, trace driven.PhaseTrace) error {
	name := fmt.Sprintf("%02d-%s", trace.Seq, trace.Phase)
	if trace.DatasetIndex > 0 {
		name += fmt.Sprintf("-ds%d", trace.DatasetIndex)
	}
	if trace.DocType != "" {
		name += "-" + strings.ToLower(string(trace.DocType))
	}

	data, err := json.MarshalIndent(trace.Payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s trace: %w", trace.Phase, err)
	}
	path := filepath.Join(t.dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Dir returns the dump directory.
func (t *Tracer) Dir() string {
	return t.dir
}
