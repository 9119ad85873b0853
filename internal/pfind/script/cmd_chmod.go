// cmd_chmod.go -- "chmod <octal-mode> <path>"
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

type chmodCmd struct{}

func (chmodCmd) Name() string { return "chmod" }

func (chmodCmd) Run(e *Env, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: chmod <octal-mode> <path>")
	}
	m, err := strconv.ParseUint(args[1], 8, 32)
	if err != nil {
		return fmt.Errorf("mode %q: %w", args[1], err)
	}
	return os.Chmod(filepath.Join(e.Root, args[2]), os.FileMode(m))
}

func init() { Register(chmodCmd{}) }
