// Package ui holds the shared terminal look of thermo: the color palette,
// status symbols, the header, and process-wide color switching.
//
// # Color Scheme
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (amber)  - Warnings and skipped input
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, help
//	ColorNeonPink  (pink)   - Titles
//
// Use DisableColors() or ApplyColorMode("never") for monochrome output
// (the --no-color flag). Gauge colors come from the gauge config, not from
// this palette.
package ui
