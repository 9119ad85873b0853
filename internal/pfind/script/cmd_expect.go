// cmd_expect.go -- "expect-match <substr>" / "expect-no-match <substr>" /
//                  "expect-count <n>" / "expect-error <0|1>"
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
	"fmt"
	"strconv"
	"strings"
)

type expectMatchCmd struct{}

func (expectMatchCmd) Name() string { return "expect-match" }

func (expectMatchCmd) Run(e *Env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: expect-match <substring>")
	}
	if !strings.Contains(e.Out.String(), args[1]) {
		return fmt.Errorf("output does not contain %q:\n%s", args[1], e.Out.String())
	}
	return nil
}

type expectNoMatchCmd struct{}

func (expectNoMatchCmd) Name() string { return "expect-no-match" }

func (expectNoMatchCmd) Run(e *Env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: expect-no-match <substring>")
	}
	if strings.Contains(e.Out.String(), args[1]) {
		return fmt.Errorf("output unexpectedly contains %q:\n%s", args[1], e.Out.String())
	}
	return nil
}

type expectCountCmd struct{}

func (expectCountCmd) Name() string { return "expect-count" }

func (expectCountCmd) Run(e *Env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: expect-count <n>")
	}
	want, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("count %q: %w", args[1], err)
	}
	if e.Matches != want {
		return fmt.Errorf("expected %d matches, got %d", want, e.Matches)
	}
	return nil
}

type expectErrorCmd struct{}

func (expectErrorCmd) Name() string { return "expect-error" }

func (expectErrorCmd) Run(e *Env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: expect-error <0|1>")
	}
	want := args[1] == "1"
	if e.Errored != want {
		return fmt.Errorf("expected errored=%v, got %v", want, e.Errored)
	}
	return nil
}

func init() {
	Register(expectMatchCmd{})
	Register(expectNoMatchCmd{})
	Register(expectCountCmd{})
	Register(expectErrorCmd{})
}
