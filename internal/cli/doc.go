// Package cli implements the thermo command-line interface.
//
// Each Cobra command is a thin shell that parses flags and hands a plain
// options struct to a function that does the work, so the work can be
// tested without going through Cobra:
//
//	thermo render [value] [--percent N | --quantity N] [--set key=value]
//	thermo watch [--file path]    - Live gauge fed by stdin or a file
//	thermo init                   - Create .thermo.yaml
//	thermo config keys|show|set   - Inspect and edit the config
//	thermo version
//
// Every command loads configuration the same way: config.Resolve finds
// .thermo.yaml (or falls back to defaults), applies THERMO_* environment
// overrides and --set pairs, and config.Validate rejects bad values before
// any gauge is built.
package cli
