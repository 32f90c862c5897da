// Package ascii provides terminal ANSI color codes and the theme used
// by the command line to highlight its output.
package ascii

import "fmt"

const (
	Reset = "\033[0m"
	Red   = "\033[1;31m"
	Cyan  = "\033[1;36m"
)

// Theme defines semantic color mappings.  The zero value doesn't
// colorize anything.
type Theme struct {
	Error  string
	Accent string // highlighted/emphasized text
}

// DefaultTheme provides a sensible default color mapping.
var DefaultTheme = Theme{
	Error:  Red,
	Accent: Cyan,
}

// Color formats the message and wraps it within `color`.  An empty
// color leaves the message untouched.
func Color(color, format string, args ...any) string {
	if color == "" {
		return fmt.Sprintf(format, args...)
	}
	return fmt.Sprintf(color+format+Reset, args...)
}
