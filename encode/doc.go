// Package encode writes ir documents as YAML or JSON.
//
// Field order is preserved in both formats. YAML output quotes any scalar
// that would otherwise read back as something other than text, so a
// document written by Encode parses back to an equal document.
//
// WriteFile replaces a destination file atomically: the new contents are
// written to a temporary file in the same directory and renamed over it.
//
// # Colors
//
// EncodeColors renders YAML with terminal colors using github.com/fatih/color.
// Colored output is for display only.
package encode
