// match.go - substring matching policy
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
	"path/filepath"
	"strings"
)

// Matches reports whether the leaf (base) component of path contains
// term as a substring. pfind matches against the leaf name, not the
// full path, consistent with "find"-like semantics.
func Matches(path, term string) bool {
	return strings.Contains(filepath.Base(path), term)
}
