package domain

import "slices"

// Field is a manifest entry the model does not interpret. Value is an opaque
// node owned by the manifest codec; it is shared between clones and never
// mutated.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered list of uninterpreted manifest entries.
type Fields []Field

// Manifest is the typed form of sketch.yaml.
type Manifest struct {
	// Profiles keeps the order in which profiles appear in the document.
	Profiles []Profile
	// Extra holds top-level keys other than profiles, such as default_profile.
	Extra Fields
}

// Profile is one named build configuration.
type Profile struct {
	Name string
	// BuildTarget is the fully qualified board name (fqbn).
	BuildTarget string
	// Platforms and Libraries are nil when sketch.yaml omits the key and
	// empty when it lists nothing, so an explicit empty list is kept.
	Platforms []PlatformDependency
	Libraries []string
	Extra     Fields
}

// PlatformDependency is a platform entry of a profile. Only IndexURL is
// rewritten after resolution.
type PlatformDependency struct {
	Reference PlatformReference
	// IndexURL is empty when sketch.yaml omits platform_index_url.
	IndexURL string
	Extra    Fields
}

// EffectiveIndexURL returns the index the platform is resolved from,
// falling back to the default Arduino index.
func (d *PlatformDependency) EffectiveIndexURL() string {
	if d.IndexURL == "" {
		return DefaultIndexURL
	}
	return d.IndexURL
}

// PinnedIndexURL is the platform_index_url written into the generated
// manifest. It interpolates the fetched index from the Nix store.
func PinnedIndexURL(variableName string) string {
	return "file://${" + variableName + "}"
}


// Clone returns a copy of the manifest whose profiles and dependencies can be
// modified independently of m.
func (m *Manifest) Clone() *Manifest {
	out := &Manifest{
		Profiles: make([]Profile, len(m.Profiles)),
		Extra:    slices.Clone(m.Extra),
	}
	for i, p := range m.Profiles {
		p.Libraries = slices.Clone(p.Libraries)
		p.Extra = slices.Clone(p.Extra)
		p.Platforms = slices.Clone(p.Platforms)
		for j := range p.Platforms {
			p.Platforms[j].Extra = slices.Clone(p.Platforms[j].Extra)
		}
		out.Profiles[i] = p
	}
	return out
}
