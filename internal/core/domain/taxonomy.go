package domain

// TaxonomyTable is the loaded issue taxonomy: categories, their options,
// aggregate flags, key aliases, and general flags. It is versioned
// configuration, loaded once and immutable at runtime.
type TaxonomyTable struct {
	// SchemaVersion guards against loading tables written for a
	// different pipeline revision.
	SchemaVersion int

	// Aliases maps historically drifted submission keys to canonical
	// category keys. Matching through an alias is tolerated but logged.
	Aliases map[string]string

	// GeneralFlags are always-on flags carrying boilerplate questions
	// present in every case (e.g. SROGsGeneral).
	GeneralFlags []FlagName

	// Categories preserves declaration order, which fixes the
	// deterministic flag universe ordering.
	Categories []CategorySpec
}

// CategorySpec describes one issue category.
type CategorySpec struct {
	// Key is the canonical category key used in normalised selections.
	Key string

	// Name is the human-readable category name.
	Name string

	// Aggregate is the category's aggregate flag, or empty if the
	// category has none.
	Aggregate FlagName

	// Toggle marks a simple boolean category: the submission sends
	// true/false instead of option labels.
	Toggle bool

	// Options preserves declaration order.
	Options []OptionSpec
}

// OptionSpec maps one selectable option label to its item flags.
// Every option must activate at least one flag (closed-world property).
type OptionSpec struct {
	Label string
	Flags []FlagName
}
