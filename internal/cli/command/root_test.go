package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/stripelist-go/internal/bench/workload"
	"github.com/yndnr/stripelist-go/internal/infra/buildinfo"
	"github.com/yndnr/stripelist-go/internal/telemetry/logger"
)

// runApp runs the app with args and returns stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logger.SetLevel("info") })

	app := App()
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"stripebench"}, args...))
	return stdout.String(), err
}

func TestApp(t *testing.T) {
	app := App()
	if app == nil {
		t.Fatal("App() returned nil")
	}
	if app.Name != "stripebench" {
		t.Errorf("Name = %q, want %q", app.Name, "stripebench")
	}
	if app.Usage == "" {
		t.Error("Usage should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"run", "shell", "config", "version"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	app := App()

	flagNames := make(map[string]bool)
	for _, flag := range app.Flags {
		flagNames[flag.Names()[0]] = true
	}
	for _, name := range []string{"config", "output", "log-level", "log-format"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestBenchFlags_HaveConfigKeys(t *testing.T) {
	keyed := make(map[string]bool)
	for _, fk := range flagKeys {
		keyed[fk.flag] = true
	}
	for _, flag := range benchFlags() {
		name := flag.Names()[0]
		if !keyed[name] {
			t.Errorf("flag --%s has no config key", name)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := runApp(t,
		"--output", "json", "--log-level", "error",
		"run", "--mix", "append", "--workers", "2", "--ops", "50", "--duration", "0s",
		"--capacity", "4", "--stripe-factor", "1",
	)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	var res workload.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.Total != 100 {
		t.Errorf("Total = %d, want 100", res.Total)
	}
	if res.Layout.Len != 100 {
		t.Errorf("Layout.Len = %d, want 100", res.Layout.Len)
	}
	if res.Layout.Capacity != 128 {
		t.Errorf("Layout.Capacity = %d, want 128", res.Layout.Capacity)
	}
	if res.Layout.StripeFactor != 1 || res.Layout.Stripes != 128 {
		t.Errorf("Layout stripes = %d x %d, want 128 x 1", res.Layout.Stripes, res.Layout.StripeFactor)
	}
}

func TestRun_Table(t *testing.T) {
	out, err := runApp(t, "--log-level", "error", "run", "--mix", "mixed", "--workers", "3", "--ops", "20", "--duration", "0s")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	for _, want := range []string{"OP", "contains", "total", "60", "ops/sec"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "invalid workers",
			args:    []string{"run", "--workers", "0"},
			wantErr: "workload.workers",
		},
		{
			name:    "invalid mix",
			args:    []string{"run", "--mix", "nothing=1"},
			wantErr: "workload.mix",
		},
		{
			name:    "invalid scan mode",
			args:    []string{"run", "--scan-mode", "diagonal"},
			wantErr: "list.scan_mode",
		},
		{
			name:    "unknown output",
			args:    []string{"--output", "xml", "run", "--ops", "1", "--duration", "0s"},
			wantErr: "output format",
		},
		{
			name:    "missing config file",
			args:    []string{"--config", "/nonexistent/bench.yaml", "run"},
			wantErr: "load config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_FlagsAndDefaults(t *testing.T) {
	out, err := runApp(t, "config", "--workers", "3", "--scan-mode", "striped")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"workers: 3", "scan_mode: striped", "duration: 10s", "mix: mixed", "stripe_factor: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfig_FileEnvAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := "list:\n  stripe_factor: 2\nworkload:\n  workers: 5\n  mix: append\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STRIPELIST_WORKLOAD__WORKERS", "7")
	t.Setenv("STRIPELIST_LIST__STRIPE_FACTOR", "6")

	out, err := runApp(t, "--config", path, "config", "--stripe-factor", "9")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"stripe_factor: 9", "workers: 7", "mix: append"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfig_JSON(t *testing.T) {
	out, err := runApp(t, "--output", "json", "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"list", "workload", "metrics", "log"} {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON output missing %q", key)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, buildinfo.Version) {
		t.Errorf("output missing version %q:\n%s", buildinfo.Version, out)
	}
	if !strings.Contains(out, "go") {
		t.Errorf("output missing go version:\n%s", out)
	}
}

func TestVersion_YAML(t *testing.T) {
	out, err := runApp(t, "--output", "yaml", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "go_version:") {
		t.Errorf("output missing go_version:\n%s", out)
	}
}

func TestShell(t *testing.T) {
	t.Cleanup(func() { logger.SetLevel("info") })

	app := App()
	var stdout, stderr bytes.Buffer
	app.Reader = strings.NewReader("append 5\nappend 6\nshow\nexit\n")
	app.Writer = &stdout
	app.ErrWriter = &stderr

	history := filepath.Join(t.TempDir(), "history")
	err := app.Run([]string{"stripebench", "--log-level", "error", "shell", "--capacity", "1", "--history-file", history})
	if err != nil {
		t.Fatalf("shell error = %v", err)
	}
	if !strings.Contains(stdout.String(), "5 6") {
		t.Errorf("shell output missing list contents:\n%s", stdout.String())
	}
	if _, err := os.Stat(history); err != nil {
		t.Errorf("history file not written: %v", err)
	}
}

func TestConfig_Diff(t *testing.T) {
	out, err := runApp(t, "config", "--diff", "--workers", "3")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"--- defaults", "+++ effective", "-  workers: 16", "+  workers: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "stripe_factor") {
		t.Errorf("diff shows unchanged keys beyond context:\n%s", out)
	}
}

func TestConfig_DiffNoChanges(t *testing.T) {
	out, err := runApp(t, "config", "--diff")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if out != "" {
		t.Errorf("diff of defaults = %q, want empty", out)
	}
}

func TestConfig_Sources(t *testing.T) {
	t.Setenv("STRIPELIST_WORKLOAD__WORKERS", "7")

	out, err := runApp(t, "config", "--sources", "--seed", "5")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"KEY", "workload.workers", "7", "workload.seed", "5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "list.capacity") {
		t.Errorf("defaults listed as sources:\n%s", out)
	}
}

func TestConfig_SourcesJSON(t *testing.T) {
	t.Setenv("STRIPELIST_LOG__LEVEL", "debug")

	out, err := runApp(t, "--output", "json", "config", "--sources")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if m["log.level"] != "debug" {
		t.Errorf("log.level = %q, want %q", m["log.level"], "debug")
	}
}
