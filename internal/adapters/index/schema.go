package index

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/zerr"
)

// decodeDocument parses a package_index.json body. Members the model does not
// interpret are kept as raw JSON in document order.
//
// Two shapes of the platforms member are accepted: the canonical array of
// entries, and an object keyed by platform name whose values are entries.
// The keyed shape is converted to the canonical one in document order.
func decodeDocument(data []byte) (*domain.IndexDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	doc := &domain.IndexDocument{}
	hasPackages := false
	err := decodeObject(dec, "", func(key string) error {
		if key != "packages" {
			return appendRaw(dec, key, &doc.Extra)
		}
		hasPackages = true
		return decodeArray(dec, "packages", func() error {
			pkg, err := decodePackage(dec)
			if err != nil {
				return err
			}
			doc.Packages = append(doc.Packages, pkg)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, decodeError("trailing data after index document", "")
	}
	if !hasPackages {
		return nil, decodeError("missing required member", "packages")
	}

	return doc, nil
}

func decodePackage(dec *json.Decoder) (domain.Package, error) {
	var pkg domain.Package
	err := decodeObject(dec, "packages[]", func(key string) error {
		switch key {
		case "name":
			return decodeText(dec, &pkg.Name)
		case "maintainer":
			return decodeText(dec, &pkg.Maintainer)
		case "websiteURL":
			return decodeText(dec, &pkg.WebsiteURL)
		case "email":
			return decodeText(dec, &pkg.Email)
		case "platforms":
			return decodePlatforms(dec, &pkg.Platforms)
		case "tools":
			return decodeArray(dec, "tools", func() error {
				tool, err := decodeTool(dec)
				if err != nil {
					return err
				}
				pkg.Tools = append(pkg.Tools, tool)
				return nil
			})
		default:
			return appendRaw(dec, key, &pkg.Extra)
		}
	})
	return pkg, err
}

// decodePlatforms accepts both the array and the keyed-object shape.
func decodePlatforms(dec *json.Decoder, out *[]domain.PlatformEntry) error {
	tok, err := dec.Token()
	if err != nil {
		return syntaxError(err)
	}

	switch tok {
	case json.Delim('['):
		for dec.More() {
			entry, err := decodePlatformEntry(dec)
			if err != nil {
				return err
			}
			*out = append(*out, entry)
		}
		return closeDelim(dec, ']')
	case json.Delim('{'):
		for dec.More() {
			key, err := decodeKey(dec)
			if err != nil {
				return err
			}
			entry, err := decodePlatformEntry(dec)
			if err != nil {
				return err
			}
			if entry.Name == "" {
				entry.Name = key
			}
			*out = append(*out, entry)
		}
		return closeDelim(dec, '}')
	case nil:
		return nil
	default:
		return decodeError("expected an array or an object", "platforms")
	}
}

func decodePlatformEntry(dec *json.Decoder) (domain.PlatformEntry, error) {
	var e domain.PlatformEntry
	err := decodeObject(dec, "platforms[]", func(key string) error {
		switch key {
		case "name":
			return decodeText(dec, &e.Name)
		case "architecture":
			return decodeText(dec, &e.Architecture)
		case "version":
			return decodeText(dec, &e.Version)
		case "category":
			return decodeText(dec, &e.Category)
		case "url":
			return decodeText(dec, &e.URL)
		case "archiveFileName":
			return decodeText(dec, &e.ArchiveFileName)
		case "checksum":
			return decodeText(dec, &e.Checksum)
		case "size":
			return decodeText(dec, &e.Size)
		default:
			return appendRaw(dec, key, &e.Extra)
		}
	})
	return e, err
}

func decodeTool(dec *json.Decoder) (domain.ToolEntry, error) {
	var t domain.ToolEntry
	err := decodeObject(dec, "tools[]", func(key string) error {
		switch key {
		case "name":
			return decodeText(dec, &t.Name)
		case "version":
			return decodeText(dec, &t.Version)
		case "systems":
			return decodeArray(dec, "systems", func() error {
				sys, err := decodeToolSystem(dec)
				if err != nil {
					return err
				}
				t.Systems = append(t.Systems, sys)
				return nil
			})
		default:
			return appendRaw(dec, key, &t.Extra)
		}
	})
	return t, err
}

func decodeToolSystem(dec *json.Decoder) (domain.ToolSystem, error) {
	var s domain.ToolSystem
	err := decodeObject(dec, "systems[]", func(key string) error {
		switch key {
		case "host":
			return decodeText(dec, &s.Host)
		case "url":
			return decodeText(dec, &s.URL)
		case "archiveFileName":
			return decodeText(dec, &s.ArchiveFileName)
		case "checksum":
			return decodeText(dec, &s.Checksum)
		case "size":
			return decodeText(dec, &s.Size)
		default:
			return appendRaw(dec, key, &s.Extra)
		}
	})
	return s, err
}

// decodeObject reads an object and calls member for each key. member must
// consume exactly one value from dec.
func decodeObject(dec *json.Decoder, path string, member func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return syntaxError(err)
	}
	if tok != json.Delim('{') {
		return decodeError("expected an object", path)
	}

	for dec.More() {
		key, err := decodeKey(dec)
		if err != nil {
			return err
		}
		if err := member(key); err != nil {
			return err
		}
	}
	return closeDelim(dec, '}')
}

// decodeArray reads an array and calls item once per element. A null value
// is an empty array.
func decodeArray(dec *json.Decoder, path string, item func() error) error {
	tok, err := dec.Token()
	if err != nil {
		return syntaxError(err)
	}
	if tok == nil {
		return nil
	}
	if tok != json.Delim('[') {
		return decodeError("expected an array", path)
	}

	for dec.More() {
		if err := item(); err != nil {
			return err
		}
	}
	return closeDelim(dec, ']')
}

func decodeKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", syntaxError(err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", decodeError("expected an object key", "")
	}
	return key, nil
}

// decodeText reads a string. Numbers are kept in their literal form since
// some indices publish sizes as numbers; null leaves out untouched.
func decodeText(dec *json.Decoder, out *string) error {
	tok, err := dec.Token()
	if err != nil {
		return syntaxError(err)
	}
	switch v := tok.(type) {
	case string:
		*out = v
	case json.Number:
		*out = v.String()
	case nil:
	default:
		return decodeError("expected a string", "")
	}
	return nil
}

func appendRaw(dec *json.Decoder, key string, out *[]domain.RawMember) error {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return syntaxError(err)
	}
	*out = append(*out, domain.RawMember{Key: key, Value: []byte(raw)})
	return nil
}

func closeDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return syntaxError(err)
	}
	if tok != want {
		return decodeError("expected "+want.String(), "")
	}
	return nil
}

func syntaxError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return zerr.Wrap(errors.Join(domain.ErrIndexDecodeFailed, err), "invalid JSON")
}

func decodeError(msg, path string) error {
	err := zerr.Wrap(domain.ErrIndexDecodeFailed, msg)
	if path = strings.TrimSuffix(path, "[]"); path != "" {
		err = zerr.With(err, "member", path)
	}
	return err
}
