// enumerator_test.go -- test harness for enumerator.go

package pfind

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func TestEnumerateSkipsDotEntries(t *testing.T) {
	assert := newAsserter(t)

	tmp := t.TempDir()
	assert(mkfilex(filepath.Join(tmp, "a.txt")) == nil, "mkfile a.txt")
	assert(mkfilex(filepath.Join(tmp, "b.txt")) == nil, "mkfile b.txt")
	assert(os.MkdirAll(filepath.Join(tmp, "sub"), 0755) == nil, "mkdir sub")

	var out, errw bytes.Buffer
	rep := NewReporter(&out, &errw)

	children := Enumerate(tmp, rep)
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = filepath.Base(c)
	}
	sort.Strings(names)

	assert(len(names) == 3, "expected 3 children, got %d: %v", len(names), names)
	assert(names[0] == "a.txt", "got %v", names)
	assert(names[1] == "b.txt", "got %v", names)
	assert(names[2] == "sub", "got %v", names)
	assert(!rep.Errored(), "no error expected")
}

func TestEnumeratePermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mode-based permission denial isn't meaningful on windows")
	}
	assert := newAsserter(t)

	tmp := t.TempDir()
	locked := filepath.Join(tmp, "locked")
	assert(os.MkdirAll(locked, 0755) == nil, "mkdir locked")
	assert(mkfilex(filepath.Join(locked, "secret")) == nil, "mkfile secret")

	if os.Geteuid() == 0 {
		t.Skip("root can read anything regardless of mode")
	}
	assert(os.Chmod(locked, 0000) == nil, "chmod 000")
	defer os.Chmod(locked, 0755)

	var out, errw bytes.Buffer
	rep := NewReporter(&out, &errw)

	children := Enumerate(locked, rep)
	assert(len(children) == 0, "expected no children from an inaccessible dir")
	assert(rep.Errored(), "expected error flag set")
	assert(bytes.Contains(out.Bytes(), []byte("Permission denied.")), "got stdout %q", out.String())
	assert(errw.Len() == 0, "permission-denied must not also land on stderr")
}

func TestClassifyDirVsOther(t *testing.T) {
	assert := newAsserter(t)

	tmp := t.TempDir()
	f := filepath.Join(tmp, "f")
	assert(mkfilex(f) == nil, "mkfile")

	kind, _, err := Classify(tmp)
	assert(err == nil, "classify dir: %v", err)
	assert(kind == KindDir, "expected KindDir")

	kind, fi, err := Classify(f)
	assert(err == nil, "classify file: %v", err)
	assert(kind == KindOther, "expected KindOther")
	assert(fi.Size() >= 0, "expected a valid size")
}
