package journal

// SaveStatus describes whether the draft on disk matches the one in memory.
type SaveStatus int

const (
	Saved SaveStatus = iota
	Pending
	Failed
)

func (s SaveStatus) String() string {
	switch s {
	case Pending:
		return "Saving..."
	case Failed:
		return "Not saved"
	}
	return "Saved"
}
