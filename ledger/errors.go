package ledger

import "errors"

// Every ledger operation reports its failure as one of these kinds,
// wrapped with detail. Callers branch with errors.Is.
var (
	ErrStorage    = errors.New("storage failure")
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failure")
)
