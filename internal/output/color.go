package output

import (
	"io"
	"os"
)

// ResolveColorMode determines the effective isTTY value from the --color
// flag and the detected TTY state:
//   - "never":  always disable colors
//   - "always": always enable colors
//   - anything else: use the detected isTTY value
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal.
// Only *os.File values can be terminals.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
