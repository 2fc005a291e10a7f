package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/stripelist-go/internal/bench/config"
	"github.com/yndnr/stripelist-go/internal/cli/output"
	"github.com/yndnr/stripelist-go/internal/infra/buildinfo"
	"github.com/yndnr/stripelist-go/internal/infra/confloader"
	"github.com/yndnr/stripelist-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "stripebench",
		Usage:   "Drive concurrent workloads against a lock-striped list",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			RunCommand(),
			ShellCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the flags available to all commands.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: json, text",
		},
	}
}

// loadConfig merges defaults, the config file, STRIPELIST_ environment
// variables and explicitly set flags, then verifies the result. The loader
// is returned so the run command can reload the same sources later.
func loadConfig(c *cli.Context) (*config.BenchConfig, *confloader.Loader, error) {
	cfg := config.Default()

	opts := []confloader.Option{confloader.WithOverrides(overrides(c))}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}
	loader := confloader.NewLoader(opts...)

	if err := loader.Load(cfg); err != nil {
		return nil, nil, err
	}
	if err := config.Verify(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, loader, nil
}

// initLogger creates the process logger and installs it as the default.
func initLogger(cfg *config.BenchConfig, w io.Writer) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: w,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}

// formatter returns the formatter selected by --output.
func formatter(c *cli.Context) (output.Formatter, output.Format, error) {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return nil, "", err
	}
	return output.NewFormatter(format), format, nil
}
