package ports

// Workspace reads project files and writes generated output.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// ReadSketch returns the content of sketch.yaml in root.
	ReadSketch(root string) ([]byte, error)
	// ReadDescription returns the content of an existing build description.
	ReadDescription(path string) ([]byte, error)
	// WriteDescription replaces the file at path atomically.
	WriteDescription(path string, data []byte) error
}
