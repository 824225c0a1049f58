// Package services defines shared utilities consumed by external tool
// integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures with errors.Is.
//   - ToolError, which carries an external program's diagnostic output as its
//     message while still matching the ErrExternalTool marker.
//
// Use these helpers when wiring new integrations so error reporting stays
// uniform across the CLI.
package services
