// cmd_mkdir.go -- "mkdir <path> [mode]"
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
	"os"
	"path/filepath"
	"strconv"
)

type mkdirCmd struct{}

func (mkdirCmd) Name() string { return "mkdir" }

func (mkdirCmd) Run(e *Env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: mkdir <path> [octal-mode]")
	}

	mode := os.FileMode(0755)
	if len(args) >= 3 {
		m, err := strconv.ParseUint(args[2], 8, 32)
		if err != nil {
			return fmt.Errorf("mode %q: %w", args[2], err)
		}
		mode = os.FileMode(m)
	}

	p := filepath.Join(e.Root, args[1])
	if err := os.MkdirAll(p, 0755); err != nil {
		return err
	}
	return os.Chmod(p, mode)
}

func init() { Register(mkdirCmd{}) }
