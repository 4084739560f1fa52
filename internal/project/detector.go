package project

import (
	"os"
	"path/filepath"
)

// FindProjectRoot searches for a web project root starting from the given
// path and climbing up the directory tree if needed.
func FindProjectRoot(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		if isProjectRoot(currentDir) {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parent
	}

	// Default to the starting directory if no project root found
	return absPath, nil
}

// isProjectRoot determines if a directory looks like a web project root.
func isProjectRoot(path string) bool {
	markers := []string{"index.html", "package.json", ".git"}
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	return false
}
