// Package dataset handles the on-disk layout of relocalization datasets:
// sequence discovery, the sequential pose filename scheme, and pose file I/O.
package dataset

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Names of the split subfolders inside each sequence folder.
const (
	TrainFolderName      = "train"
	ValidationFolderName = "validation"
	TestFolderName       = "test"
)

// FindSequenceNames returns the names of the valid sequences under a dataset
// root, sorted. A subdirectory is a valid sequence if it has both "train" and
// "test" subfolders.
func FindSequenceNames(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot list dataset folder %q", root)
	}

	var sequences []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		trainPath := filepath.Join(root, entry.Name(), TrainFolderName)
		testPath := filepath.Join(root, entry.Name(), TestFolderName)
		if isDir(trainPath) && isDir(testPath) {
			sequences = append(sequences, entry.Name())
		}
	}

	// Directory iteration order is not guaranteed.
	sort.Strings(sequences)
	return sequences, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path refers to a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
