// cmd_search.go -- "search <relative-root> <term> <nworkers>"
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
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/opencoff/pfind/internal/pfind"
)

type searchCmd struct{}

func (searchCmd) Name() string { return "search" }

func (searchCmd) Run(e *Env, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: search <root> <term> <nworkers>")
	}

	root := filepath.Join(e.Root, args[1])
	term := args[2]
	n, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("nworkers %q: %w", args[3], err)
	}

	e.Out.Reset()
	e.Err.Reset()
	rep := pfind.NewReporter(&e.Out, &e.Err)

	matches, errored, err := pfind.SearchTo(context.Background(), root, term, n, pfind.Options{}, rep)
	if err != nil {
		return err
	}
	e.Matches = matches
	e.Errored = errored
	return nil
}

func init() { Register(searchCmd{}) }
