// enumerator.go - directory enumeration
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
	"io/fs"
	"os"

	"github.com/puzpuzpuz/xsync/v3"
)

// EntryKind classifies a path for the worker loop.
type EntryKind int

const (
	KindOther EntryKind = iota
	KindDir
)

// Classify stats path and reports whether it is a directory, along
// with the os.FileInfo from that stat (so callers matching a file
// don't need a second syscall to learn its size). Symlinks are
// followed (os.Stat, not os.Lstat), matching the original program's
// use of stat(2) with no cycle detection.
func Classify(path string) (EntryKind, fs.FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return KindOther, nil, &PathError{"stat", path, err}
	}
	if fi.IsDir() {
		return KindDir, fi, nil
	}
	return KindOther, fi, nil
}

// mountGuard tracks (dev, ino) pairs of directories already descended,
// for the opt-in --dedupe-mount cycle mitigation. A nil *mountGuard
// disables the check entirely (the default).
type mountGuard struct {
	seen *xsync.MapOf[string, struct{}]
}

func newMountGuard() *mountGuard {
	return &mountGuard{seen: xsync.NewMapOf[string, struct{}]()}
}

// visit records path's (dev, ino) pair and reports whether it had
// already been seen. If the platform can't expose dev/ino, visit
// always reports false (never blocks descent).
func (g *mountGuard) visit(path string) bool {
	if g == nil {
		return false
	}
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	dev, ino, ok := devIno(fi)
	if !ok {
		return false
	}
	key := fmt.Sprintf("%d:%d", dev, ino)
	_, loaded := g.seen.LoadOrStore(key, struct{}{})
	return loaded
}

// Enumerate lists the accessible children of directory path, skipping
// "." and "..", and reports them as freshly allocated "path/name"
// strings. It does not use filepath.Join, which would clean a leading
// "." out of a relative root.
//
// If path cannot be opened because of a permission error, Enumerate
// emits the "Permission denied" diagnostic (to the Reporter's stdout
// stream, per the program's documented behavior) and returns no
// children, without descending the subtree. Any other I/O failure is
// reported as a generic diagnostic on stderr. Neither case pushes
// children of the inaccessible directory.
func Enumerate(path string, rep *Reporter) []string {
	fd, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			rep.PermissionDenied(path)
		} else {
			rep.Diagnostic("%s", (&PathError{"opendir", path, err}).Error())
		}
		return nil
	}
	defer fd.Close()

	names, err := fd.Readdirnames(-1)
	if err != nil {
		rep.Diagnostic("%s", (&PathError{"readdir", path, err}).Error())
		return nil
	}

	children := make([]string, 0, len(names))
	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		children = append(children, path+"/"+name)
	}
	return children
}
