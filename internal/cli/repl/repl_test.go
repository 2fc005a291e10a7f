package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

func newTestREPL(t *testing.T, input string, opts ...stripelist.Option) (*REPL, *bytes.Buffer) {
	t.Helper()
	l, err := stripelist.New[int](opts...)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	return New(l, WithIO(strings.NewReader(input), out)), out
}

func TestNew(t *testing.T) {
	r, _ := newTestREPL(t, "")
	if r.completer == nil {
		t.Error("completer should be initialized")
	}
	if r.history == nil {
		t.Error("history should be initialized")
	}
	if r.list == nil {
		t.Error("list should be set")
	}
}

func TestREPL_Run_Exit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"exit command", "exit\n"},
		{"quit command", "quit\n"},
		{"EOF", ""},
		{"EOF after command", "len"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestREPL(t, tt.input)
			if err := r.Run(); err != nil {
				t.Errorf("Run() returned error: %v", err)
			}
		})
	}
}

func TestREPL_Run_EmptyLines(t *testing.T) {
	r, out := newTestREPL(t, "\n\n\nexit\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if prompts := strings.Count(out.String(), prompt); prompts < 4 {
		t.Errorf("expected at least 4 prompts, got %d", prompts)
	}
	if r.history.Len() != 1 {
		t.Errorf("history has %d entries, want only exit", r.history.Len())
	}
}

func TestREPL_Operations(t *testing.T) {
	input := strings.Join([]string{
		"append 7",
		"append 9",
		"set 1 11",
		"get 1",
		"contains 7",
		"contains 9",
		"len",
		"cap",
		"exit",
	}, "\n") + "\n"

	r, out := newTestREPL(t, input, stripelist.WithCapacity(2))
	if err := r.Run(); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"(index) 0", "(index) 1", "OK", "11\n", "true\n", "false\n", "2\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if v, _ := r.list.Get(1); v != 11 {
		t.Errorf("list[1] = %d, want 11", v)
	}
}

func TestREPL_ShowAndStats(t *testing.T) {
	r, out := newTestREPL(t, "append 1\nappend 2\nshow\nstats\n", stripelist.WithCapacity(2), stripelist.WithStripeFactor(1))
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{"1 2", "capacity", "stripe_factor", "snapshot"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestREPL_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"out of range", "get 99", "out of range"},
		{"missing argument", "set 1", "usage: set INDEX VALUE"},
		{"not a number", "append x", "VALUE must be an integer"},
		{"suggestion", "ge 1", "did you mean get"},
		{"unknown", "delete 1", "try help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestREPL(t, tt.input+"\nexit\n")
			if err := r.Run(); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			if !strings.Contains(out.String(), "Error: ") || !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want error containing %q", out.String(), tt.want)
			}
		})
	}
}

func TestREPL_History(t *testing.T) {
	r, out := newTestREPL(t, "  len  \n\tcap\t\nhistory\nexit\n")
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}

	if r.history.Get(0) != "exit" || r.history.Get(3) != "len" {
		t.Errorf("history not trimmed or ordered: %v", r.history.entries)
	}
	if !strings.Contains(out.String(), "   1  len") {
		t.Errorf("history output missing first entry:\n%s", out.String())
	}
}
