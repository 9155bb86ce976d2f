package domain

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// PlatformReference identifies one hardware platform release, written in
// sketch.yaml as `vendor:platform (x.y.z)`.
type PlatformReference struct {
	Vendor   string
	Platform string
	Version  Version
}

// String returns the canonical form `vendor:platform (x.y.z)`.
func (r PlatformReference) String() string {
	return r.Vendor + ":" + r.Platform + " (" + r.Version.String() + ")"
}

// ParseReference parses a platform identifier.
//
// Blanks are accepted before the opening parenthesis, inside the
// parentheses and around the dots of the version. Names and digit runs
// cannot contain blanks.
func ParseReference(text string) (PlatformReference, error) {
	p := &refParser{src: strings.Trim(text, " \t")}

	vendor, err := p.name("vendor")
	if err != nil {
		return PlatformReference{}, err
	}
	if err := p.expect(':'); err != nil {
		return PlatformReference{}, err
	}
	platform, err := p.name("platform")
	if err != nil {
		return PlatformReference{}, err
	}

	p.skipBlanks()
	if err := p.expect('('); err != nil {
		return PlatformReference{}, err
	}
	p.skipBlanks()

	version, err := p.version()
	if err != nil {
		return PlatformReference{}, err
	}

	p.skipBlanks()
	if err := p.expect(')'); err != nil {
		return PlatformReference{}, err
	}
	if !p.eof() {
		return PlatformReference{}, p.fail("end of input")
	}

	return PlatformReference{Vendor: vendor, Platform: platform, Version: version}, nil
}

// MustParseReference is like ParseReference but panics on error.
// It is intended for tests and constant tables.
func MustParseReference(text string) PlatformReference {
	ref, err := ParseReference(text)
	if err != nil {
		panic(err)
	}
	return ref
}

type refParser struct {
	src string
	pos int
}

func (p *refParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *refParser) skipBlanks() {
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *refParser) expect(c byte) error {
	if p.eof() || p.src[p.pos] != c {
		return p.fail(strconv.QuoteRune(rune(c)))
	}
	p.pos++
	return nil
}

func (p *refParser) name(what string) (string, error) {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isNameRune(r) {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		return "", p.fail(what + " name")
	}
	return p.src[start:p.pos], nil
}

func (p *refParser) number() (uint64, error) {
	start := p.pos
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.fail("digit")
	}
	n, err := strconv.ParseUint(p.src[start:p.pos], 10, 64)
	if err != nil {
		p.pos = start
		return 0, p.fail("version component that fits in 64 bits")
	}
	return n, nil
}

func (p *refParser) version() (Version, error) {
	var nums [3]uint64
	for i := range nums {
		if i > 0 {
			p.skipBlanks()
			if err := p.expect('.'); err != nil {
				return Version{}, err
			}
			p.skipBlanks()
		}
		n, err := p.number()
		if err != nil {
			return Version{}, err
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (p *refParser) fail(expected string) error {
	found := "end of input"
	if !p.eof() {
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		found = strconv.QuoteRune(r)
	}

	err := zerr.Wrap(ErrMalformedReference, "expected "+expected+", found "+found)
	err = zerr.With(err, "text", p.src)
	return zerr.With(err, "position", p.pos)
}

func isNameRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
