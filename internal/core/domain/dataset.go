package domain

// Dataset is one independent (Head-of-Household plaintiff, defendant)
// pairing. Each dataset owns a private copy of its plaintiff's
// selections; datasets never share mutable state.
type Dataset struct {
	// Index is the 1-based dataset number, assigned in plaintiff-major,
	// defendant-minor order. The ordering is stable and deterministic
	// because filenames and set numbering depend on it.
	Index int

	// Plaintiff is the Head-of-Household plaintiff for this pairing.
	Plaintiff Plaintiff

	// Defendant is the responding party for this pairing.
	Defendant Defendant

	// Selections is a deep copy of the plaintiff's discovery selections.
	Selections SelectionSet
}
