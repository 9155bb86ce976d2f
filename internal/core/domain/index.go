package domain

// RawMember is an index document member the model does not interpret.
// Value holds the member's raw JSON encoding.
type RawMember struct {
	Key   string
	Value []byte
}

// IndexDocument is a decoded package_index.json.
type IndexDocument struct {
	Packages []Package
	Extra    []RawMember
}

// Package is a vendor's entry in an index document.
type Package struct {
	Name       string
	Maintainer string
	WebsiteURL string
	Email      string
	Platforms  []PlatformEntry
	Tools      []ToolEntry
	Extra      []RawMember
}

// PlatformEntry is one downloadable platform release.
type PlatformEntry struct {
	Name            string
	Architecture    string
	Version         string
	Category        string
	URL             string
	ArchiveFileName string
	Checksum        string
	Size            string
	Extra           []RawMember
}

// ToolEntry is a toolchain component published alongside platforms.
type ToolEntry struct {
	Name    string
	Version string
	Systems []ToolSystem
	Extra   []RawMember
}

// ToolSystem is the download of a tool for one host triple.
type ToolSystem struct {
	Host            string
	URL             string
	ArchiveFileName string
	Checksum        string
	Size            string
	Extra           []RawMember
}

// MatchPolicy selects how a platform entry is matched against a reference.
type MatchPolicy int

const (
	// MatchFirstByName returns the first entry whose name matches, whatever
	// its version. Indices list one entry per release under the same name,
	// so this can return a different version than the one requested; callers
	// are expected to report the mismatch.
	MatchFirstByName MatchPolicy = iota
	// MatchExactVersion returns the first entry whose name and version both match.
	MatchExactVersion
)

// String returns the policy name.
func (p MatchPolicy) String() string {
	switch p {
	case MatchExactVersion:
		return "exact-version"
	default:
		return "first-by-name"
	}
}

// FindPackage returns the first package named name.
func (d *IndexDocument) FindPackage(name string) (*Package, bool) {
	for i := range d.Packages {
		if d.Packages[i].Name == name {
			return &d.Packages[i], true
		}
	}
	return nil, false
}

// FindPlatform returns the platform entry matching name and version under policy.
func (p *Package) FindPlatform(name string, version Version, policy MatchPolicy) (*PlatformEntry, bool) {
	for i := range p.Platforms {
		entry := &p.Platforms[i]
		if entry.Name != name {
			continue
		}
		if policy == MatchExactVersion && !entry.HasVersion(version) {
			continue
		}
		return entry, true
	}
	return nil, false
}

// HasVersion reports whether the entry's version equals v. Entries whose
// version cannot be parsed never match.
func (e *PlatformEntry) HasVersion(v Version) bool {
	parsed, err := ParseIndexVersion(e.Version)
	if err != nil {
		return false
	}
	return parsed.Equal(v)
}
