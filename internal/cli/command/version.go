package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/stripelist-go/internal/cli/output"
	"github.com/yndnr/stripelist-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: versionShow,
	}
}

func versionShow(c *cli.Context) error {
	f, format, err := formatter(c)
	if err != nil {
		return err
	}

	info := buildinfo.Get()
	if format != output.FormatTable {
		return f.Format(c.App.Writer, info)
	}

	t := &output.Table{Headers: []string{"KEY", "VALUE"}}
	t.AddRow("version", info.Version)
	t.AddRow("commit", info.Commit)
	t.AddRow("built", info.BuildTime)
	t.AddRow("go", info.GoVersion)
	if err := t.Render(c.App.Writer); err != nil {
		return fmt.Errorf("render version: %w", err)
	}
	return nil
}
