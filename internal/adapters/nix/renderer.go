// Package nix renders build descriptions as Nix expressions.
package nix

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptionRenderer = (*Renderer)(nil)

const (
	headerGenerated   = "# Auto-generated with arduino2nix. Do not modify."
	headerEdit        = "# Edit your sketch.yaml and then run `arduino2nix generate` to update this file."
	fingerprintPrefix = "# arduino2nix-fingerprint: "

	// sketchBinding is the let binding holding the rewritten sketch.yaml.
	sketchBinding = "sketch_yaml"
)

// Renderer implements ports.DescriptionRenderer. The output is unformatted
// Nix with two-space indentation; formatting is left to nixfmt.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the Arduino.nix expression for desc.
func (r *Renderer) Render(desc *domain.BuildDescription) ([]byte, error) {
	keep := make(map[string]struct{}, len(desc.Artifacts))
	for _, a := range desc.Artifacts {
		if !domain.IsNixIdentifier(a.VariableName) || a.VariableName == sketchBinding {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrRenderFailed, "artifact name is not a valid Nix identifier"),
				"name", a.VariableName,
			)
		}
		if _, dup := keep[a.VariableName]; dup {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrRenderFailed, "duplicate artifact binding"),
				"name", a.VariableName,
			)
		}
		keep[a.VariableName] = struct{}{}
	}

	var b strings.Builder

	b.WriteString(headerGenerated + "\n")
	b.WriteString(headerEdit + "\n")
	if desc.Fingerprint != "" {
		b.WriteString(fingerprintPrefix + desc.Fingerprint + "\n")
	}
	b.WriteString("{ pkgs ? import <nixpkgs> { }, pname, version }:\n")
	b.WriteString("let\n")

	for _, a := range desc.Artifacts {
		fmt.Fprintf(&b, "  %s = pkgs.fetchurl {\n", a.VariableName)
		fmt.Fprintf(&b, "    url = %s;\n", quoteString(a.URL))
		fmt.Fprintf(&b, "    sha256 = %s;\n", quoteString(a.Checksum))
		b.WriteString("  };\n")
	}

	manifest := string(desc.Manifest)
	if manifest != "" && !strings.HasSuffix(manifest, "\n") {
		manifest += "\n"
	}
	fmt.Fprintf(&b, "  %s = pkgs.writeText %s ''\n", sketchBinding, quoteString(domain.SketchFileName))
	b.WriteString(indent(escapeIndented(manifest, keep), "    "))
	b.WriteString("  '';\n")

	b.WriteString("in\n")
	b.WriteString("pkgs.stdenv.mkDerivation {\n")
	b.WriteString("  inherit pname version;\n")
	b.WriteString("  src = ./.;\n")
	b.WriteString("  nativeBuildInputs = [ pkgs.arduino-cli ];\n")
	b.WriteString("  postUnpack = ''\n")
	b.WriteString("    rm -f $sourceRoot/sketch.yaml\n")
	fmt.Fprintf(&b, "    ln -s ${%s} $sourceRoot/sketch.yaml\n", sketchBinding)
	b.WriteString("  '';\n")
	b.WriteString("  buildPhase = ''\n")
	b.WriteString("    export HOME=$TMPDIR\n")
	b.WriteString("    arduino-cli compile --profile ${pname} --output-dir output\n")
	b.WriteString("  '';\n")
	b.WriteString("  installPhase = ''\n")
	b.WriteString("    mkdir -p $out\n")
	b.WriteString("    cp output/${pname}.ino.elf $out/payload.elf\n")
	b.WriteString("  '';\n")
	b.WriteString("}\n")

	return []byte(b.String()), nil
}

// Fingerprint returns the fingerprint recorded in the header of a rendered
// description. Formatting does not move comment lines, so formatted output
// is read the same way.
func (r *Renderer) Fingerprint(text []byte) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "#") {
			if line == "" {
				continue
			}
			// The header ends at the first line of code.
			return "", false
		}
		if fp, ok := strings.CutPrefix(line, fingerprintPrefix); ok {
			fp = strings.TrimSpace(fp)
			return fp, fp != ""
		}
	}
	return "", false
}
