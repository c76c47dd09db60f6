package sqldata

import "errors"

// ErrNotFound indicates the requested row does not exist.
// Callers check with errors.Is().
var ErrNotFound = errors.New("record not found")
