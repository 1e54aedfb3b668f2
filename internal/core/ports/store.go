package ports

// FingerprintStore persists per-class tool-configuration records between
// runs and reports whether the current record differs from the stored one.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// CompareAndStore serializes fields, compares them case-insensitively to
	// the record persisted under dir for the class, and writes the current
	// serialization back. It returns true iff a previous record existed and
	// differed.
	CompareAndStore(dir, class string, fields map[string]string) (bool, error)

	// Remove deletes the persisted record for the class. Removing a missing
	// record is not an error.
	Remove(dir, class string) error
}
