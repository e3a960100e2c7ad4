// Package menu implements the interactive query loop: a prompt that
// reads single-letter commands and renders answers from the loaded
// tree until the user quits.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"github.com/arbores/kin/query"
	"github.com/arbores/kin/tree"
)

const prompt = "kin> "

// Menu drives the interactive session. The tree behind it can be
// swapped while the loop runs, so a config reload takes effect at the
// next command.
type Menu struct {
	mu  sync.RWMutex
	t   *tree.Tree
	in  io.Reader
	out io.Writer
}

// New creates a menu over t reading commands from in and rendering to
// out.
func New(t *tree.Tree, in io.Reader, out io.Writer) *Menu {
	return &Menu{t: t, in: in, out: out}
}

// SetTree replaces the tree the menu answers from.
func (m *Menu) SetTree(t *tree.Tree) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = t
}

func (m *Menu) tree() *tree.Tree {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.t
}

// Run reads commands until Q or end of input. Query errors are
// reported and the loop continues; only a read failure ends the
// session with an error.
func (m *Menu) Run() error {
	m.printHelp()
	fmt.Fprint(m.out, prompt)

	scanner := bufio.NewScanner(m.in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(m.out, prompt)
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "q", "quit", "exit":
			fmt.Fprintln(m.out, "bye")
			return nil
		case "t":
			m.runTrace(args)
		case "d":
			m.runDeceased(args)
		case "n":
			m.runNames(args)
		case "s":
			m.runStats()
		case "h", "help", "?":
			m.printHelp()
		default:
			fmt.Fprintf(m.out, "%s unknown command %q, try H for help\n", pterm.Yellow("?"), fields[0])
		}
		fmt.Fprint(m.out, prompt)
	}
	return scanner.Err()
}

func (m *Menu) printHelp() {
	fmt.Fprintf(m.out, "%s\n", pterm.LightCyan("Commands:"))
	fmt.Fprintf(m.out, "  T <name> [a|d]   trace ancestors (default) or descendants\n")
	fmt.Fprintf(m.out, "  D [alive|from-to]  list the deceased, optionally filtered\n")
	fmt.Fprintf(m.out, "  N [name]         count people by name; bare N lists shared names\n")
	fmt.Fprintf(m.out, "  S                tree statistics\n")
	fmt.Fprintf(m.out, "  Q                quit\n")
}

// reportProblem prints a query error without ending the session.
func (m *Menu) reportProblem(err error) {
	fmt.Fprintf(m.out, "%s %v\n", pterm.Yellow("!"), err)
}

func (m *Menu) runTrace(args []string) {
	dir := query.Ancestors
	if len(args) > 1 {
		if d, err := query.ParseDirection(args[len(args)-1]); err == nil {
			dir = d
			args = args[:len(args)-1]
		}
	}
	name := strings.Join(args, " ")

	rows, err := query.Trace(m.tree(), name, dir)
	if err != nil {
		m.reportProblem(err)
		return
	}
	RenderTrace(m.out, name, dir, rows)
}

func (m *Menu) runDeceased(args []string) {
	f, err := query.ParseDeathFilter(strings.Join(args, " "))
	if err != nil {
		m.reportProblem(err)
		return
	}
	RenderDeceased(m.out, f, query.Deceased(m.tree(), f))
}

func (m *Menu) runNames(args []string) {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		// bare N lists the full names more than one person carries
		RenderDuplicates(m.out, query.DuplicateNames(m.tree()))
		return
	}
	RenderNames(m.out, query.Names(m.tree(), name))
}

func (m *Menu) runStats() {
	t := m.tree()
	RenderStats(m.out, query.Stats(t), query.DuplicateNames(t))
}
