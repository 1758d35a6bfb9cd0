package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bikeshare/internal/errors"
)

// dataExtensions lists the dataset formats the loader understands, in
// preference order.
var dataExtensions = []string{".csv", ".xlsx"}

// Discovery resolves city data files inside the configured data directory
type Discovery struct {
	dataDir string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(dataDir string) *Discovery {
	return &Discovery{dataDir: dataDir}
}

// Resolve returns the full path of the data file for the given
// configured file name. When the exact file is missing it retries the
// base name with each known dataset extension, so a configured
// "chicago.csv" still resolves when only chicago.xlsx is on disk.
func (d *Discovery) Resolve(fileName string) (string, error) {
	candidates := []string{fileName}
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	for _, ext := range dataExtensions {
		if base+ext != fileName {
			candidates = append(candidates, base+ext)
		}
	}

	for _, name := range candidates {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(d.dataDir, name)
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.NewNotFoundError("data file " + fileName).
		WithContext("dir", d.dataDir)
}

// ListDatasets returns the names of all dataset files present in the
// data directory, sorted by name. Used for troubleshooting messages
// when a configured file is missing.
func (d *Discovery) ListDatasets() []string {
	entries, err := os.ReadDir(d.dataDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, known := range dataExtensions {
			if ext == known {
				names = append(names, entry.Name())
				break
			}
		}
	}

	sort.Strings(names)
	return names
}
