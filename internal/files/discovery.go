package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered export file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides export file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindExports finds all CSV and Excel exports in the specified directory,
// sorted by name for deterministic processing order.
func (d *Discovery) FindExports(dir string) ([]FileInfo, error) {
	return d.findByExt(dir, ".csv", ".xlsx", ".xls")
}

// FindStatements finds the quarterly statement exports in dir: files whose
// name carries the "Profit and Loss" marker the accounting system stamps on
// its exports.
func (d *Discovery) FindStatements(dir string) ([]FileInfo, error) {
	all, err := d.FindExports(dir)
	if err != nil {
		return nil, err
	}
	var statements []FileInfo
	for _, f := range all {
		if strings.Contains(f.Name, "Profit and Loss") {
			statements = append(statements, f)
		}
	}
	return statements, nil
}

func (d *Discovery) findByExt(dir string, exts ...string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[ext] = true
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !wanted[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}
