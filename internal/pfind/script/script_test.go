// script_test.go -- exercises the scripted scenario DSL against real
// temp-directory trees.
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

package script

import (
	"os"
	"runtime"
	"testing"
)

func runScript(t *testing.T, text string) *Env {
	t.Helper()

	steps, err := Parse(text)
	if err != nil {
		t.Fatalf("parse: %s", err)
	}

	e := NewEnv(t.TempDir())
	if err := Run(e, steps); err != nil {
		t.Fatalf("run: %s\nstdout:\n%s\nstderr:\n%s", err, e.Out.String(), e.Err.String())
	}
	return e
}

func TestScriptBasicMatch(t *testing.T) {
	runScript(t, `
		# a single matching file one level down
		mkfile sub/foo_bar
		mkfile sub/baz
		search . foo 4
		expect-match foo_bar
		expect-no-match baz
		expect-count 1
		expect-error 0
	`)
}

func TestScriptNoMatch(t *testing.T) {
	runScript(t, `
		mkfile a.txt
		mkfile sub/b.txt
		search . nope 2
		expect-count 0
		expect-error 0
	`)
}

func TestScriptPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("mode-based permission denial isn't meaningful here")
	}
	runScript(t, `
		mkfile ok/match_1
		mkfile locked/match_2
		chmod 000 locked
		search . match 3
		expect-match match_1
		expect-no-match match_2
		expect-error 1
	`)
}

func TestScriptLineContinuation(t *testing.T) {
	runScript(t, `
		mkfile sub/deep/tree/needle_file
		search \
			. \
			needle \
			1
		expect-count 1
		expect-error 0
	`)
}

func TestScriptUnknownCommand(t *testing.T) {
	if _, err := Parse("bogus-verb foo"); err == nil {
		t.Fatal("expected an error for an unregistered command")
	}
}

func TestScriptComments(t *testing.T) {
	e := runScript(t, `
		# comment lines such as these two must be skipped
		# entirely by Parse
		mkfile present
		search . present 1
		expect-count 1
	`)
	if e.Errored {
		t.Fatalf("unexpected error flag")
	}
}
