// Package pagination computes and drives a windowed pagination control.
//
// This package contains the page-window logic shared by the CLI and the TUI:
//   - Compute: maps the current page, total page count and neighbor count to
//     the ordered page numbers and ellipsis markers to display
//   - Controller: owns the current page and notifies a callback on navigation
//   - Options: pagination settings, defaults, validation and flag binding
//   - PageInfo: the navigation payload handed to callbacks and renderers
//
// Compute is a pure function; Controller is not safe for concurrent use.
package pagination
