package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// PhrasebookDir is the conventional phrasebook directory name.
const PhrasebookDir = ".introducer"

// FindPhrasebook recursively looks upwards from startDir for a PhrasebookDir
// directory and returns its absolute path.
func FindPhrasebook(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, PhrasebookDir)
		if isDir(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("phrasebook not found above %s", abs)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
