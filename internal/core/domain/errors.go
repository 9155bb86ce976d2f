package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedReference is returned when a platform identifier does not match
	// the `vendor:platform (x.y.z)` grammar.
	ErrMalformedReference = zerr.New("malformed platform reference, expected format: vendor:platform (x.y.z)")

	// ErrMalformedVersion is returned when a version string is not a valid x.y.z triple.
	ErrMalformedVersion = zerr.New("malformed version, expected format: major.minor.patch")

	// ErrInvalidManifest is returned when sketch.yaml cannot be decoded into a manifest.
	ErrInvalidManifest = zerr.New("invalid sketch manifest")

	// ErrManifestEncodeFailed is returned when a manifest cannot be serialized back to YAML.
	ErrManifestEncodeFailed = zerr.New("failed to encode sketch manifest")

	// ErrIndexFetchFailed is returned when a package index cannot be downloaded.
	ErrIndexFetchFailed = zerr.New("failed to fetch package index")

	// ErrIndexDecodeFailed is returned when a package index is not a valid index document.
	ErrIndexDecodeFailed = zerr.New("failed to decode package index")

	// ErrNotFound is the common kind of ErrPackageNotFound and ErrPlatformNotFound.
	ErrNotFound = zerr.New("platform not found in package index")

	// ErrPackageNotFound is returned when no package in the index is named after the vendor.
	ErrPackageNotFound = zerr.New("no package matches the platform vendor")

	// ErrPlatformNotFound is returned when the vendor package has no matching platform entry.
	ErrPlatformNotFound = zerr.New("no platform entry matches the reference")

	// ErrUnsupportedChecksum is returned when an index checksum uses an algorithm other than SHA-256.
	ErrUnsupportedChecksum = zerr.New("unsupported checksum algorithm, only SHA-256 is supported")

	// ErrGenerateFailed is returned when the build description cannot be generated.
	ErrGenerateFailed = zerr.New("failed to generate build description")

	// ErrRenderFailed is returned when the Nix description cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render Nix description")

	// ErrFormatFailed is returned when the external Nix formatter fails.
	ErrFormatFailed = zerr.New("failed to format Nix description")

	// ErrSketchNotFound is returned when the project root has no sketch.yaml.
	ErrSketchNotFound = zerr.New("could not find sketch.yaml in project root")

	// ErrSketchReadFailed is returned when sketch.yaml exists but cannot be read.
	ErrSketchReadFailed = zerr.New("failed to read sketch.yaml")

	// ErrOutputWriteFailed is returned when the generated description cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write build description")

	// ErrDescriptionNotFound is returned by check when no build description exists yet.
	ErrDescriptionNotFound = zerr.New("build description not found, run generate first")

	// ErrStaleDescription is returned by check when the description was generated
	// from a different sketch.yaml.
	ErrStaleDescription = zerr.New("build description is out of date with sketch.yaml")

	// ErrConfigLoadFailed is returned when the settings file or environment cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load settings")

	// ErrInvalidProgressMode is returned when the progress setting is not auto, always or never.
	ErrInvalidProgressMode = zerr.New("invalid progress mode, expected 'auto', 'always' or 'never'")

	// ErrInvalidVariableName is returned when a platform reference does not
	// yield a valid Nix identifier, for example when the vendor starts with a digit.
	ErrInvalidVariableName = zerr.New("platform reference does not yield a valid Nix identifier")

	// ErrVariableNameCollision is returned when distinct platform references
	// yield the same Nix binding name.
	ErrVariableNameCollision = zerr.New("distinct platform references share a Nix binding name")

	// ErrWatchFailed is returned when the project root cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch project root")
)
