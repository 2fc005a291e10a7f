package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/stripelist-go/internal/cli/repl"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Operate on a list interactively",
		Flags: append(benchFlags(), &cli.StringFlag{
			Name:  "history-file",
			Usage: "Shell history file, empty to keep history in memory",
			Value: repl.DefaultHistoryFile(),
		}),
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, err := initLogger(cfg, c.App.ErrWriter)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	opts, err := cfg.ListOptions(log.With("component", "stripelist").Slog())
	if err != nil {
		return err
	}
	list, err := stripelist.New[int](opts...)
	if err != nil {
		return fmt.Errorf("create list: %w", err)
	}

	r := repl.New(list,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithHistory(repl.NewHistory(c.String("history-file"))),
	)
	return r.Run()
}
