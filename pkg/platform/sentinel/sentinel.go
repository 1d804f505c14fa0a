package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Catalogs and other lookup layers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: no entry exists for the requested key
// - ErrInvalidState: data loaded from outside the process is unusable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)
