package repository

// PersistenceError wraps a storage-layer failure crossing the repository
// boundary. The orchestration layer propagates it unchanged; retries, if
// any, belong to the repository implementation, not to callers.
type PersistenceError struct {
	Op  string // repository operation, e.g. "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence: " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
