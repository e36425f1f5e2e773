package common

import "os"

// File system permissions for generated artifacts.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
