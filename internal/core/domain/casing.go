package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// VariableName returns the Nix binding name of the reference:
// `{vendor}-{platform}-v{major}-{minor}-{patch}` in kebab case.
func (r PlatformReference) VariableName() string {
	var sb strings.Builder
	sb.WriteString(Kebab(r.Vendor))
	sb.WriteByte('-')
	sb.WriteString(Kebab(r.Platform))
	sb.WriteString("-v")
	sb.WriteString(strconv.FormatUint(r.Version.Major, 10))
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatUint(r.Version.Minor, 10))
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatUint(r.Version.Patch, 10))
	return sb.String()
}

// Kebab converts an identifier to lowercase words joined by hyphens.
//
// Words break at '_', '-', '.', blanks, a lowercase letter or digit
// followed by an uppercase letter, and the last capital of an acronym that
// starts a new word ("HTTPServer" is "http-server"). A letter followed by
// a digit does not break, so "esp32" stays one word.
func Kebab(s string) string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	word := make([]rune, 0, len(runes))

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	for i, r := range runes {
		if isWordSeparator(r) {
			flush()
			continue
		}
		if len(word) > 0 {
			prev := word[len(word)-1]
			switch {
			case (unicode.IsLower(prev) || unicode.IsDigit(prev)) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		word = append(word, r)
	}
	flush()

	return strings.Join(words, "-")
}

func isWordSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ', '\t':
		return true
	default:
		return false
	}
}

// IsNixIdentifier reports whether s can be used as a Nix binding name: a
// letter or underscore followed by letters, digits, '_', '-' or '\''.
func IsNixIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && (c == '-' || c == '\'' || isDigit(c)):
		default:
			return false
		}
	}
	return true
}
