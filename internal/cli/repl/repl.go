package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yndnr/stripelist-go/internal/cli/output"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

const prompt = "stripelist> "

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
	list      *stripelist.List[int]
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithHistory replaces the default in-memory history.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// New creates a shell operating on list.
func New(list *stripelist.List[int], opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory(""),
		list:      list,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the loop and returns on exit, quit or end of input.
func (r *REPL) Run() error {
	if err := r.history.Load(); err != nil {
		fmt.Fprintf(r.output, "warning: history not loaded: %v\n", err)
	}
	defer r.history.Save()

	reader := bufio.NewReader(r.input)
	for {
		fmt.Fprint(r.output, prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		line = strings.TrimSpace(line)
		if line == "" {
			if eof {
				fmt.Fprintln(r.output)
				return nil
			}
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}
		if err := r.execute(line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
		if eof {
			return nil
		}
	}
}

func (r *REPL) execute(line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "get":
		n, err := intArgs(cmd, args, "INDEX")
		if err != nil {
			return err
		}
		v, err := r.list.Get(n[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, v)

	case "set":
		n, err := intArgs(cmd, args, "INDEX", "VALUE")
		if err != nil {
			return err
		}
		if err := r.list.Set(n[0], n[1]); err != nil {
			return err
		}
		fmt.Fprintln(r.output, "OK")

	case "append":
		n, err := intArgs(cmd, args, "VALUE")
		if err != nil {
			return err
		}
		idx, err := r.list.Append(n[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(r.output, "(index) %d\n", idx)

	case "contains":
		n, err := intArgs(cmd, args, "VALUE")
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, r.list.Contains(n[0]))

	case "show":
		fmt.Fprintln(r.output, r.list.String())

	case "stats":
		return r.stats()

	case "len":
		fmt.Fprintln(r.output, r.list.Len())

	case "cap":
		fmt.Fprintln(r.output, r.list.Cap())

	case "history":
		for i := r.history.Len() - 1; i >= 0; i-- {
			fmt.Fprintf(r.output, "%4d  %s\n", r.history.Len()-i, r.history.Get(i))
		}

	case "help":
		fmt.Fprintln(r.output, "commands: "+strings.Join(r.completer.Complete(""), ", "))

	default:
		if s := r.completer.Complete(cmd); len(s) > 0 {
			return fmt.Errorf("unknown command %q, did you mean %s?", cmd, strings.Join(s, " or "))
		}
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (r *REPL) stats() error {
	st := r.list.Stats()
	t := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	t.AddRow("capacity", st.Capacity)
	t.AddRow("len", st.Len)
	t.AddRow("stripe_factor", st.StripeFactor)
	t.AddRow("stripes", st.Stripes)
	t.AddRow("growths", st.Growths)
	t.AddRow("scan_mode", r.list.ScanMode())
	return t.Render(r.output)
}

// intArgs parses exactly len(names) integer arguments.
func intArgs(cmd string, args []string, names ...string) ([]int, error) {
	if len(args) != len(names) {
		return nil, fmt.Errorf("usage: %s %s", cmd, strings.Join(names, " "))
	}
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %s must be an integer, got %q", cmd, names[i], a)
		}
		out[i] = n
	}
	return out, nil
}
