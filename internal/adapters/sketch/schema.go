package sketch

import (
	"iter"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Keys of sketch.yaml the manifest model interprets. Everything else is
// carried through as uninterpreted fields.
const (
	keyProfiles         = "profiles"
	keyFQBN             = "fqbn"
	keyPlatforms        = "platforms"
	keyLibraries        = "libraries"
	keyPlatform         = "platform"
	keyPlatformIndexURL = "platform_index_url"
)

const (
	tagStr  = "!!str"
	tagNull = "!!null"
	tagMap  = "!!map"
	tagSeq  = "!!seq"
)

func invalid(node *yaml.Node, path, msg string) error {
	err := zerr.Wrap(domain.ErrInvalidManifest, msg)
	if path != "" {
		err = zerr.With(err, "path", path)
	}
	if node != nil && node.Line > 0 {
		err = zerr.With(err, "line", node.Line)
	}
	return err
}

// pairs iterates the key/value pairs of a mapping node. Keys are dereferenced
// when they are aliases.
func pairs(mapping *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			if !yield(deref(mapping.Content[i]), mapping.Content[i+1]) {
				return
			}
		}
	}
}

func deref(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == tagNull)
}

// detach returns a deep copy of node with aliases expanded and anchors
// cleared, so an uninterpreted field can be re-emitted on its own.
func detach(node *yaml.Node) *yaml.Node {
	node = deref(node)
	if node == nil {
		return nil
	}
	out := *node
	out.Anchor = ""
	if len(node.Content) > 0 {
		out.Content = make([]*yaml.Node, len(node.Content))
		for i, child := range node.Content {
			out.Content[i] = detach(child)
		}
	}
	return &out
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap}
}

func sequenceNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq}
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: value}
}
