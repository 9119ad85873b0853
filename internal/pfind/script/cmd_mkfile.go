// cmd_mkfile.go -- "mkfile <path>"
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
)

type mkfileCmd struct{}

func (mkfileCmd) Name() string { return "mkfile" }

func (mkfileCmd) Run(e *Env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: mkfile <path>")
	}

	p := filepath.Join(e.Root, args[1])
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte("x"), 0644)
}

func init() { Register(mkfileCmd{}) }
