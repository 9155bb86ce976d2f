package domain

import "path/filepath"

const (
	// SketchFileName is the name of the Arduino project manifest.
	SketchFileName = "sketch.yaml"

	// DescriptionFileName is the name of the generated Nix build description.
	DescriptionFileName = "Arduino.nix"

	// SettingsFileName is the name of the optional per-project settings file.
	SettingsFileName = ".arduino2nix.yaml"

	// StdoutPath is the output path that selects standard output.
	StdoutPath = "-"

	// DefaultIndexURL is the package index arduino-cli uses when a platform
	// does not declare platform_index_url.
	DefaultIndexURL = "https://downloads.arduino.cc/packages/package_index.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SketchPath returns the path of sketch.yaml inside root.
func SketchPath(root string) string {
	return filepath.Join(root, SketchFileName)
}

// DefaultDescriptionPath returns the path of Arduino.nix inside root.
func DefaultDescriptionPath(root string) string {
	return filepath.Join(root, DescriptionFileName)
}

// SettingsPath returns the path of the settings file inside root.
func SettingsPath(root string) string {
	return filepath.Join(root, SettingsFileName)
}
