// errors.go - descriptive errors for pfind
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package pfind

import (
	"errors"
	"fmt"
)

// PathError represents an error encountered while enumerating or
// stat-ing a single filesystem path.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error returns a string representation of PathError
func (e *PathError) Error() string {
	return fmt.Sprintf("pfind: %s '%s': %s", e.Op, e.Path, e.Err.Error())
}

// Unwrap returns the underlying wrapped error
func (e *PathError) Unwrap() error {
	return e.Err
}

var _ error = &PathError{}

// Fatal startup errors - never recorded via the Reporter's error flag.
// Search and SearchTo return ErrInvalidWorkerCount for n < 1.
var (
	ErrTooFewArgs         = errors.New("not enough arguments")
	ErrInvalidWorkerCount = errors.New("invalid number of worker threads")
	ErrEmptySearchTerm    = errors.New("search term must not be empty")
)
