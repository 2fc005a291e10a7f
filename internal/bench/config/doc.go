// Package config defines the stripebench configuration.
//
//   - spec.go: BenchConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation with errors naming the offending key
//   - convert.go: Translation into list options and a workload config
//
// Configuration is loaded via internal/infra/confloader from a YAML file,
// STRIPELIST_ environment variables and command-line flags, in that order.
package config
