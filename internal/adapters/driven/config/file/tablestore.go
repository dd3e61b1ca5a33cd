// Package file provides TOML-backed rule-table loading.
package file

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
	"github.com/propoundhq/propound-cli/internal/tables"
)

// Ensure TableStore implements the interface.
var _ driven.TableStore = (*TableStore)(nil)

// TableStore loads taxonomy and profile tables from TOML files. The
// expected layout is taxonomy.toml plus profiles/<doctype>.toml.
type TableStore struct {
	fsys fs.FS
}

// NewTableStore creates a table store over a directory. An empty dir
// falls back to the default tables embedded in the binary.
func NewTableStore(dir string) *TableStore {
	if dir == "" {
		return &TableStore{fsys: tables.FS}
	}
	return &TableStore{fsys: os.DirFS(dir)}
}

// taxonomyFile mirrors taxonomy.toml.
type taxonomyFile struct {
	SchemaVersion int               `toml:"schema_version"`
	GeneralFlags  []string          `toml:"general_flags"`
	Aliases       map[string]string `toml:"aliases"`
	Categories    []categoryFile    `toml:"categories"`
}

type categoryFile struct {
	Key       string       `toml:"key"`
	Name      string       `toml:"name"`
	Aggregate string       `toml:"aggregate"`
	Toggle    bool         `toml:"toggle"`
	Options   []optionFile `toml:"options"`
}

type optionFile struct {
	Label string   `toml:"label"`
	Flags []string `toml:"flags"`
}

// profileFile mirrors profiles/<doctype>.toml.
type profileFile struct {
	DocType string            `toml:"doc_type"`
	Cap     int               `toml:"cap"`
	Flags   []profileFlagFile `toml:"flags"`
}

type profileFlagFile struct {
	Flag         string `toml:"flag"`
	Count        int    `toml:"count"`
	FirstSetOnly bool   `toml:"first_set_only"`
}

// LoadTaxonomy reads and converts taxonomy.toml.
func (s *TableStore) LoadTaxonomy() (*domain.TaxonomyTable, error) {
	data, err := fs.ReadFile(s.fsys, "taxonomy.toml")
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy table: %w", err)
	}

	var parsed taxonomyFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parsing taxonomy.toml: %v", domain.ErrInvalidTables, err)
	}

	table := &domain.TaxonomyTable{
		SchemaVersion: parsed.SchemaVersion,
		Aliases:       parsed.Aliases,
	}
	for _, f := range parsed.GeneralFlags {
		table.GeneralFlags = append(table.GeneralFlags, domain.FlagName(f))
	}
	for _, cat := range parsed.Categories {
		spec := domain.CategorySpec{
			Key:       cat.Key,
			Name:      cat.Name,
			Aggregate: domain.FlagName(cat.Aggregate),
			Toggle:    cat.Toggle,
		}
		for _, opt := range cat.Options {
			optSpec := domain.OptionSpec{Label: opt.Label}
			for _, f := range opt.Flags {
				optSpec.Flags = append(optSpec.Flags, domain.FlagName(f))
			}
			spec.Options = append(spec.Options, optSpec)
		}
		table.Categories = append(table.Categories, spec)
	}
	return table, nil
}

// LoadProfile reads and converts profiles/<doctype>.toml.
func (s *TableStore) LoadProfile(docType domain.DocType) (*domain.DocumentProfile, error) {
	if !docType.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDocType, docType)
	}

	path := "profiles/" + strings.ToLower(string(docType)) + ".toml"
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, docType)
		}
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var parsed profileFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidTables, path, err)
	}
	if parsed.DocType != string(docType) {
		return nil, fmt.Errorf("%w: %s declares doc_type %q", domain.ErrInvalidTables, path, parsed.DocType)
	}

	profile := &domain.DocumentProfile{
		DocType: docType,
		Cap:     parsed.Cap,
	}
	if profile.Cap == 0 {
		profile.Cap = domain.DefaultSetCap
	}
	for _, entry := range parsed.Flags {
		profile.Flags = append(profile.Flags, domain.ProfileFlag{
			Flag:         domain.FlagName(entry.Flag),
			Count:        entry.Count,
			FirstSetOnly: entry.FirstSetOnly,
		})
	}
	return profile, nil
}
