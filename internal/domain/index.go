package domain

// UpsertOutcome reports what the document index did with an upserted
// snapshot, so callers can skip downstream work for discarded writes.
type UpsertOutcome int

const (
	// UpsertCreated means the document did not exist before.
	UpsertCreated UpsertOutcome = iota
	// UpsertReplaced means an older stored document was overwritten.
	UpsertReplaced
	// UpsertSkippedStale means the stored document carries a newer
	// updatedAt and the snapshot was discarded.
	UpsertSkippedStale
)

// String returns the outcome name for logging.
func (o UpsertOutcome) String() string {
	switch o {
	case UpsertCreated:
		return "created"
	case UpsertReplaced:
		return "replaced"
	case UpsertSkippedStale:
		return "skipped-stale"
	default:
		return "unknown"
	}
}
