// panicf.go -- fatal-exit helper
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

package main

import (
	"fmt"
	"os"
)

// Die prints a formatted diagnostic prefixed with the program name to
// stderr and exits with status 1.
func Die(s string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", Z, s)
	m := fmt.Sprintf(z, v...)
	if n := len(m); n == 0 || m[n-1] != '\n' {
		m += "\n"
	}
	fmt.Fprint(os.Stderr, m)
	os.Exit(1)
}
