// Package output renders command results for stripebench.
//
// Supported formats:
//
//   - table: aligned columns via text/tabwriter (default)
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//
// Values that implement Tabler choose their own table layout; anything
// else falls back to JSON in table mode.
package output
