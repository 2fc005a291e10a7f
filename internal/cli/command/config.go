package command

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/stripelist-go/internal/bench/config"
	"github.com/yndnr/stripelist-go/internal/cli/output"
	"github.com/yndnr/stripelist-go/internal/infra/confloader"
)

// ConfigCommand returns the config command.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration",
		Description: "Merges defaults, --config, STRIPELIST_ environment variables and flags " +
			"the same way run does. Table output is rendered as YAML.",
		Flags: append(benchFlags(),
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "Show only what differs from the defaults, as a unified diff",
			},
			&cli.BoolFlag{
				Name:  "sources",
				Usage: "List only the keys set by the file, environment or flags",
			},
		),
		Action: configShow,
	}
}

func configShow(c *cli.Context) error {
	cfg, loader, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("sources") {
		return configSources(c, loader)
	}
	if c.Bool("diff") {
		return configDiff(c, cfg)
	}

	f, format, err := formatter(c)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		f = output.NewFormatter(output.FormatYAML)
	}
	return f.Format(c.App.Writer, cfg)
}

func configDiff(c *cli.Context, cfg *config.BenchConfig) error {
	yaml := output.NewFormatter(output.FormatYAML)

	var defaults, effective bytes.Buffer
	if err := yaml.Format(&defaults, config.Default()); err != nil {
		return err
	}
	if err := yaml.Format(&effective, cfg); err != nil {
		return err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(defaults.String()),
		B:        difflib.SplitLines(effective.String()),
		FromFile: "defaults",
		ToFile:   "effective",
		Context:  1,
	})
	if err != nil {
		return fmt.Errorf("diff config: %w", err)
	}
	_, err = fmt.Fprint(c.App.Writer, diff)
	return err
}

func configSources(c *cli.Context, loader *confloader.Loader) error {
	f, format, err := formatter(c)
	if err != nil {
		return err
	}

	keys := loader.Keys()
	if format != output.FormatTable {
		set := make(map[string]string, len(keys))
		for _, k := range keys {
			set[k] = loader.GetString(k)
		}
		return f.Format(c.App.Writer, set)
	}

	t := &output.Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range keys {
		t.AddRow(k, loader.GetString(k))
	}
	if err := t.Render(c.App.Writer); err != nil {
		return fmt.Errorf("render config sources: %w", err)
	}
	return nil
}
