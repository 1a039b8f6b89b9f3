package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RenderTree walks root and returns a box-drawing rendering of the directory
// structure, children sorted by name, directories suffixed with "/". The
// walk is read-only; a missing root yields a fixed placeholder message.
func RenderTree(root string) string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "No folders generated yet."
	}

	lines := []string{filepath.Base(filepath.Clean(root)) + "/"}
	appendTree(root, "", &lines)
	return strings.Join(lines, "\n")
}

func appendTree(dir, prefix string, lines *[]string) {
	// os.ReadDir returns entries sorted by name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		*lines = append(*lines, fmt.Sprintf("%s(unreadable: %v)", prefix, err))
		return
	}

	for i, entry := range entries {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(entries)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		if entry.IsDir() {
			*lines = append(*lines, prefix+connector+entry.Name()+"/")
			appendTree(filepath.Join(dir, entry.Name()), childPrefix, lines)
		} else {
			*lines = append(*lines, prefix+connector+entry.Name())
		}
	}
}
