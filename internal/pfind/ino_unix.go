// ino_unix.go -- device/inode extraction for the visited-directory guard
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

//go:build unix

package pfind

import (
	"io/fs"
	"syscall"
)

// devIno returns the (device, inode) pair of fi, and true if the
// underlying platform exposes one. Used only by the opt-in
// --dedupe-mount guard.
func devIno(fi fs.FileInfo) (dev, ino uint64, ok bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return uint64(st.Dev), st.Ino, true
}
