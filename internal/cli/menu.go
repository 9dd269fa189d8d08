package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	grafoerrors "github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/pipeline"
	"github.com/matzehuels/grafo/pkg/report"
)

// menuItem is one entry of the interactive menu.
type menuItem struct {
	key   string
	label string
}

const (
	choiceLoad = "1"
	choiceQuit = "0"
)

var menuItems = []menuItem{
	{choiceLoad, "Read graph from file"},
	{"2", "Graph information"},
	{"3", "Sparse adjacency matrix"},
	{"4", "Adjacency list"},
	{"5", "Breadth-first search and diameter"},
	{"6", "Depth-first search and diameter"},
	{"7", "Connected components"},
	{choiceQuit, "Quit"},
}

var menuReports = map[string]report.Kind{
	"2": report.KindInfo,
	"3": report.KindSparse,
	"4": report.KindAdjacency,
	"5": report.KindBFS,
	"6": report.KindDFS,
	"7": report.KindComponents,
}

// prompter collects menu choices and free-text answers.
// Both methods return io.EOF when input ends.
type prompter interface {
	Choose(items []menuItem) (string, error)
	Ask(label, placeholder string) (string, error)
}

// newPrompter returns an interactive prompter when in is a terminal and a
// line-based one otherwise (piped input, CI).
func newPrompter(in *os.File, out io.Writer) prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &ttyPrompter{}
	}
	return newLinePrompter(in, out)
}

// menuCommand creates the interactive menu command.
func (c *CLI) menuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu [file]",
		Short: "Interactive menu: read a graph and pick reports",
		Long: `Run the interactive menu. Choose 1 to read a graph file, 2-7 to write a
report for the loaded graph, and 0 to quit. An optional file argument is
read before the menu opens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &menu{
				runner: c.newRunner(loggerFromContext(cmd.Context())),
				prompt: newPrompter(os.Stdin, stdout),
				opts:   c.pipelineOptions(),
			}
			if len(args) == 1 {
				m.load(cmd.Context(), args[0])
			}
			return m.run(cmd.Context())
		},
	}
	return cmd
}

// menu is the request/response loop of the interactive mode.
type menu struct {
	runner *pipeline.Runner
	prompt prompter
	opts   pipeline.Options
}

// run shows the menu until the user quits or input ends. Failures of a
// single request are printed and the loop continues.
func (m *menu) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := m.prompt.Choose(menuItems)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice = strings.TrimSpace(choice); choice {
		case choiceQuit:
			printInfo("Bye.")
			return nil
		case choiceLoad:
			name, err := m.prompt.Ask("Graph file", "graph.txt")
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			m.load(ctx, name)
		default:
			kind, ok := menuReports[choice]
			if !ok {
				printWarning("Invalid option %q. Choose one of 0-7.", choice)
				continue
			}
			if err := m.report(ctx, kind); errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return err
			}
		}
	}
}

// load reads a graph file into the session, printing the outcome.
func (m *menu) load(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		printWarning("No file name given.")
		return
	}
	g, err := m.runner.Load(ctx, name)
	if err != nil {
		printError("%s", grafoerrors.UserMessage(err))
		return
	}
	printSuccess("Loaded %s", name)
	printGraphSummary(name, g)
}

// report writes one report for the loaded graph. Only input errors are
// returned; analysis failures are printed.
func (m *menu) report(ctx context.Context, kind report.Kind) error {
	if !m.runner.Session.Loaded() {
		_, err := m.runner.Session.Graph()
		printError("%s", grafoerrors.UserMessage(err))
		return nil
	}

	opts := m.opts
	if isTraversal(kind) {
		answer, err := m.prompt.Ask("Start vertex", "smallest vertex")
		if err != nil {
			return err
		}
		start, err := parseStart(answer)
		if err != nil {
			printError("%s", grafoerrors.UserMessage(err))
			return nil
		}
		opts.Start = start
	}

	path, err := m.runner.Write(ctx, kind, opts)
	if err != nil {
		printError("%s", grafoerrors.UserMessage(err))
		return nil
	}
	printSuccess("Wrote %s report", kind)
	printFile(path)
	return nil
}

// parseStart reads a start vertex answer. Blank selects the smallest vertex.
func parseStart(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, grafoerrors.New(grafoerrors.ErrCodeMalformedInput, "start vertex must be a positive integer, got %q", s)
	}
	return v, nil
}

// =============================================================================
// linePrompter - line-based input for non-terminals
// =============================================================================

// linePrompter prints a numbered menu and reads one answer per line.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

func (p *linePrompter) Choose(items []menuItem) (string, error) {
	fmt.Fprint(p.out, "\nMenu:\n\n")
	for _, it := range items {
		fmt.Fprintf(p.out, "%s. %s\n", it.key, it.label)
	}
	fmt.Fprint(p.out, "\nChoose an option: ")
	return p.readLine()
}

func (p *linePrompter) Ask(label, _ string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// readLine returns the next trimmed line. A final line without a newline
// is returned before io.EOF.
func (p *linePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
