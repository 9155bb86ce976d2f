package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a semantic version. References always carry a plain
// major.minor.patch triple; Pre and Build are only populated for index
// entries such as "1.0.0-rc1".
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   string
	Build string
}

// String returns the canonical textual form of the version.
func (v Version) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(v.Major, 10))
	sb.WriteByte('.')
	sb.WriteString(strconv.FormatUint(v.Minor, 10))
	sb.WriteByte('.')
	sb.WriteString(strconv.FormatUint(v.Patch, 10))
	if v.Pre != "" {
		sb.WriteByte('-')
		sb.WriteString(v.Pre)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// Equal reports whether two versions have the same precedence.
// Build metadata does not take part in the comparison.
func (v Version) Equal(other Version) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Patch == other.Patch &&
		v.Pre == other.Pre
}

// ParseVersion parses a strict major.minor.patch triple.
func ParseVersion(text string) (Version, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedVersion, "expected three components"), "version", text)
	}

	var nums [3]uint64
	for i, part := range parts {
		n, err := parseDigits(part)
		if err != nil {
			return Version{}, zerr.With(err, "version", text)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// ParseIndexVersion parses the version of a package index entry. It accepts
// an optional pre-release and build suffix after the x.y.z core.
func ParseIndexVersion(text string) (Version, error) {
	core := text
	var build, pre string
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core, build = core[:i], core[i+1:]
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core, pre = core[:i], core[i+1:]
	}

	v, err := ParseVersion(core)
	if err != nil {
		return Version{}, zerr.With(err, "index_version", text)
	}
	v.Pre = pre
	v.Build = build
	return v, nil
}

func parseDigits(s string) (uint64, error) {
	if s == "" {
		return 0, zerr.Wrap(ErrMalformedVersion, "empty version component")
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return 0, zerr.With(zerr.Wrap(ErrMalformedVersion, "non-numeric version component"), "component", s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(ErrMalformedVersion, "version component out of range"), "component", s)
	}
	return n, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
