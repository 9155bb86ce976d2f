// Package sketch implements the sketch.yaml codec on top of the yaml.v3 node API.
package sketch

import (
	"bytes"
	"errors"
	"strconv"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestCodec = (*Codec)(nil)

const indentSpaces = 2

// Codec implements ports.ManifestCodec.
//
// Load keeps every key it does not interpret as a *yaml.Node in the
// manifest's Extra fields, and Dump writes them back after the modeled keys.
// Comments attached to those nodes survive; comments on modeled keys do not.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Load decodes a sketch.yaml document.
func (c *Codec) Load(data []byte) (*domain.Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidManifest, err), "failed to parse YAML")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, invalid(nil, "", "document is empty")
	}

	root := deref(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, invalid(root, "", "expected a mapping at the top level")
	}

	m := &domain.Manifest{}
	found := false
	for key, value := range pairs(root) {
		if key.Value == keyProfiles {
			profiles, err := decodeProfiles(value)
			if err != nil {
				return nil, err
			}
			m.Profiles = profiles
			found = true
			continue
		}
		m.Extra = append(m.Extra, domain.Field{Key: key.Value, Value: detach(value)})
	}

	if !found {
		return nil, invalid(root, keyProfiles, "missing required field")
	}

	return m, nil
}

// Dump encodes a manifest. Modeled keys come first in a fixed order, followed
// by uninterpreted keys in their original order.
func (c *Codec) Dump(m *domain.Manifest) ([]byte, error) {
	profiles := mappingNode()
	for i := range m.Profiles {
		node, err := encodeProfile(&m.Profiles[i])
		if err != nil {
			return nil, err
		}
		profiles.Content = append(profiles.Content, stringNode(m.Profiles[i].Name), node)
	}

	root := mappingNode()
	root.Content = append(root.Content, stringNode(keyProfiles), profiles)
	if err := appendFields(root, m.Extra); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indentSpaces)
	if err := enc.Encode(root); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrManifestEncodeFailed, err), "failed to encode YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrManifestEncodeFailed, err), "failed to flush YAML encoder")
	}

	return buf.Bytes(), nil
}

func decodeProfiles(node *yaml.Node) ([]domain.Profile, error) {
	node = deref(node)
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, invalid(node, keyProfiles, "expected a mapping of profile names")
	}

	profiles := make([]domain.Profile, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for key, value := range pairs(node) {
		path := keyProfiles + "." + key.Value
		if _, dup := seen[key.Value]; dup {
			return nil, invalid(key, path, "duplicate profile")
		}
		seen[key.Value] = struct{}{}

		profile, err := decodeProfile(key.Value, value, path)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func decodeProfile(name string, node *yaml.Node, path string) (domain.Profile, error) {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return domain.Profile{}, invalid(node, path, "expected a mapping")
	}

	profile := domain.Profile{Name: name}
	hasTarget := false
	for key, value := range pairs(node) {
		var err error
		switch key.Value {
		case keyFQBN:
			profile.BuildTarget, err = decodeString(value, path+"."+keyFQBN)
			hasTarget = true
		case keyPlatforms:
			profile.Platforms, err = decodePlatforms(value, path+"."+keyPlatforms)
		case keyLibraries:
			profile.Libraries, err = decodeStrings(value, path+"."+keyLibraries)
		default:
			profile.Extra = append(profile.Extra, domain.Field{Key: key.Value, Value: detach(value)})
		}
		if err != nil {
			return domain.Profile{}, err
		}
	}

	if !hasTarget {
		return domain.Profile{}, invalid(node, path+"."+keyFQBN, "missing required field")
	}

	return profile, nil
}

func decodePlatforms(node *yaml.Node, path string) ([]domain.PlatformDependency, error) {
	node = deref(node)
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, invalid(node, path, "expected a list")
	}

	deps := make([]domain.PlatformDependency, 0, len(node.Content))
	for i, item := range node.Content {
		dep, err := decodePlatform(item, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func decodePlatform(node *yaml.Node, path string) (domain.PlatformDependency, error) {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return domain.PlatformDependency{}, invalid(node, path, "expected a mapping")
	}

	var dep domain.PlatformDependency
	hasRef := false
	for key, value := range pairs(node) {
		switch key.Value {
		case keyPlatform:
			text, err := decodeString(value, path+"."+keyPlatform)
			if err != nil {
				return domain.PlatformDependency{}, err
			}
			ref, err := domain.ParseReference(text)
			if err != nil {
				wrapped := zerr.Wrap(errors.Join(domain.ErrInvalidManifest, err), "invalid platform reference")
				wrapped = zerr.With(wrapped, "path", path+"."+keyPlatform)
				return domain.PlatformDependency{}, zerr.With(wrapped, "line", value.Line)
			}
			dep.Reference = ref
			hasRef = true
		case keyPlatformIndexURL:
			url, err := decodeString(value, path+"."+keyPlatformIndexURL)
			if err != nil {
				return domain.PlatformDependency{}, err
			}
			dep.IndexURL = url
		default:
			dep.Extra = append(dep.Extra, domain.Field{Key: key.Value, Value: detach(value)})
		}
	}

	if !hasRef {
		return domain.PlatformDependency{}, invalid(node, path+"."+keyPlatform, "missing required field")
	}
	return dep, nil
}

func decodeString(node *yaml.Node, path string) (string, error) {
	node = deref(node)
	if node.Kind != yaml.ScalarNode || node.ShortTag() != tagStr {
		return "", invalid(node, path, "expected a string")
	}
	return node.Value, nil
}

func decodeStrings(node *yaml.Node, path string) ([]string, error) {
	node = deref(node)
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, invalid(node, path, "expected a list")
	}

	out := make([]string, 0, len(node.Content))
	for i, item := range node.Content {
		s, err := decodeString(item, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func encodeProfile(p *domain.Profile) (*yaml.Node, error) {
	node := mappingNode()
	node.Content = append(node.Content, stringNode(keyFQBN), stringNode(p.BuildTarget))

	if p.Platforms != nil {
		seq := sequenceNode()
		for i := range p.Platforms {
			item, err := encodePlatform(&p.Platforms[i])
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, item)
		}
		node.Content = append(node.Content, stringNode(keyPlatforms), seq)
	}

	if p.Libraries != nil {
		seq := sequenceNode()
		for _, lib := range p.Libraries {
			seq.Content = append(seq.Content, stringNode(lib))
		}
		node.Content = append(node.Content, stringNode(keyLibraries), seq)
	}

	if err := appendFields(node, p.Extra); err != nil {
		return nil, err
	}
	return node, nil
}

func encodePlatform(d *domain.PlatformDependency) (*yaml.Node, error) {
	node := mappingNode()
	node.Content = append(node.Content, stringNode(keyPlatform), stringNode(d.Reference.String()))
	if d.IndexURL != "" {
		node.Content = append(node.Content, stringNode(keyPlatformIndexURL), stringNode(d.IndexURL))
	}
	if err := appendFields(node, d.Extra); err != nil {
		return nil, err
	}
	return node, nil
}

// appendFields adds uninterpreted fields to a mapping node. Values loaded by
// this codec are nodes already; anything else is encoded through yaml.v3.
func appendFields(mapping *yaml.Node, fields domain.Fields) error {
	for _, field := range fields {
		var value *yaml.Node
		switch v := field.Value.(type) {
		case *yaml.Node:
			value = v
		default:
			value = &yaml.Node{}
			if err := value.Encode(v); err != nil {
				wrapped := zerr.Wrap(errors.Join(domain.ErrManifestEncodeFailed, err), "failed to encode field")
				return zerr.With(wrapped, "key", field.Key)
			}
		}
		mapping.Content = append(mapping.Content, stringNode(field.Key), value)
	}
	return nil
}
