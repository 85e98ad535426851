package toolchain

import (
	"regexp"
	"strings"
)

// Characters that do not require quoting in a POSIX shell word
var shellUnsafe = regexp.MustCompile(`[^\w@%+=:,./-]`)

// Quote returns a shell-escaped version of s. Strings made only of safe
// characters are returned unchanged, so common paths stay readable in the
// terminal scrollback.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !shellUnsafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
