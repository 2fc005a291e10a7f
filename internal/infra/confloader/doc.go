// Package confloader provides configuration loading for stripelist tools.
//
// It uses koanf as the underlying library and layers sources with the
// following priority (highest to lowest):
//
//  1. Command-line flags (LoadMap)
//  2. Environment variables (STRIPELIST_ prefix)
//  3. YAML or TOML configuration file, chosen by extension
//  4. Defaults already present in the target struct
//
// Environment variable names map to keys by dropping the prefix, lowering
// case and turning a double underscore into a dot:
//
//	STRIPELIST_LIST__STRIPE_FACTOR=8  ->  list.stripe_factor
//
// Watcher reports writes to a configuration file so long-running commands
// can re-apply settings such as the log level.
package confloader
