// ino_other.go -- device/inode extraction for non-unix platforms
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

//go:build !unix

package pfind

import "io/fs"

// devIno is unsupported on non-unix platforms; --dedupe-mount is a
// silent no-op there.
func devIno(fi fs.FileInfo) (dev, ino uint64, ok bool) {
	return 0, 0, false
}
