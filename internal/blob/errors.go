package blob

import "errors"

// ErrObjectNotFound is returned by Get when no object exists under the
// requested key.
var ErrObjectNotFound = errors.New("object was not found")
