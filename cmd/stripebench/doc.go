// Command stripebench drives concurrent workloads against a lock-striped
// list and reports throughput, growth and layout.
//
// Usage:
//
//	stripebench [--config FILE] [--output table|json|yaml] run [flags]
//	stripebench config [flags]
//	stripebench version
//
// Examples:
//
//	stripebench run --mix read-heavy --workers 32 --duration 30s
//	stripebench run --mix append --ops 100000 --stripe-factor 1
//	stripebench --output json run --mix "get=1,set=1" --metrics-addr :9100
//
// Settings are read from the config file, then STRIPELIST_ environment
// variables (STRIPELIST_WORKLOAD__WORKERS=8), then flags.
package main
