// Package command provides the stripebench command definitions.
//
// This package defines all commands using urfave/cli/v2:
//
//   - root.go: App, global flags, config loading and logger setup
//   - flags.go: List and workload flags and their config keys
//   - run.go: The run command, metrics endpoint and config watching
//   - shell.go: The interactive shell over one list
//   - config.go: The config command
//   - version.go: The version command
//
// Flags only override the configuration when given explicitly, so a
// config file or STRIPELIST_ environment variables still apply.
package command
