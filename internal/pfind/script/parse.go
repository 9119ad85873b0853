// parse.go -- lex and parse the pfind scripted test harness
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

// Package script implements a tiny DSL for describing end-to-end
// pfind scenarios: build a temp-directory tree, run a search, assert
// on its output. It mirrors the teacher's own testsuite command
// registry (build tree, verb + args per line, '\' line-continuation)
// rather than a generic BDD framework.
package script

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/opencoff/shlex"
)

// Cmd is one verb of the scripted DSL.
type Cmd interface {
	Run(e *Env, args []string) error
	Name() string
}

// Step is one parsed line of a script: a command and its arguments
// (args[0] is the command name, same as the teacher's TestSuite.Args).
type Step struct {
	Cmd  Cmd
	Args []string
}

type registry struct {
	sync.Mutex
	once sync.Once
	cmds map[string]Cmd
}

var commands registry

// Register adds a command to the global registry. Called from init()
// in each cmd_*.go file.
func Register(cmd Cmd) {
	commands.Lock()
	defer commands.Unlock()

	commands.once.Do(func() {
		commands.cmds = make(map[string]Cmd)
	})

	nm := cmd.Name()
	if _, ok := commands.cmds[nm]; ok {
		panic(fmt.Sprintf("script: %s: command already registered", nm))
	}
	commands.cmds[nm] = cmd
}

// Parse reads a script from text (one command per line, '#' comments,
// trailing '\' continues a line onto the next) and returns the parsed
// steps in order.
func Parse(text string) ([]Step, error) {
	var steps []Step
	var line string

	sc := bufio.NewScanner(strings.NewReader(text))
	for n := 1; sc.Scan(); n++ {
		part := strings.TrimSpace(sc.Text())
		if len(part) == 0 || part[0] == '#' {
			continue
		}

		if part[len(part)-1] == '\\' {
			line += part[:len(part)-1]
			continue
		}

		line += part
		args, err := shlex.Split(line)
		line = ""
		if err != nil {
			return nil, fmt.Errorf("script:%d: %w", n, err)
		}
		if len(args) == 0 {
			continue
		}

		nm := args[0]
		cmd, ok := commands.cmds[nm]
		if !ok {
			return nil, fmt.Errorf("script:%d: unknown command %q", n, nm)
		}
		steps = append(steps, Step{Cmd: cmd, Args: args})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

// Run executes every step against e in order, stopping at the first
// error.
func Run(e *Env, steps []Step) error {
	for _, s := range steps {
		if err := s.Cmd.Run(e, s.Args); err != nil {
			return fmt.Errorf("%s: %w", s.Cmd.Name(), err)
		}
	}
	return nil
}
