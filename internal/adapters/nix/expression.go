package nix

import (
	"strings"

	"go.trai.ch/arduino2nix/internal/core/domain"
)

// quoteString renders s as a double-quoted Nix string literal.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' || c == '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '$' && i+1 < len(s) && s[i+1] == '{':
			b.WriteString(`\$`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// escapeIndented escapes s for use inside a Nix indented string ('' ... '').
// Interpolations of the form file://${name} are kept when name is in keep;
// every other ${ is escaped.
func escapeIndented(s string, keep map[string]struct{}) string {
	const pinnedPrefix = "file://"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "''"):
			b.WriteString("'''")
			i++
		case strings.HasPrefix(s[i:], "${"):
			if strings.HasSuffix(s[:i], pinnedPrefix) {
				if name, ok := interpolation(s[i:]); ok {
					if _, known := keep[name]; known {
						b.WriteString(s[i : i+len(name)+3])
						i += len(name) + 2
						continue
					}
				}
			}
			b.WriteString("''${")
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// interpolation returns the name inside a leading ${name}.
func interpolation(s string) (string, bool) {
	end := strings.IndexByte(s, '}')
	if end < 3 {
		return "", false
	}
	name := s[2:end]
	return name, domain.IsNixIdentifier(name)
}


// indent prefixes every non-empty line of s with prefix.
func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}
