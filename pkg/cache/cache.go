// Package cache inspects and cleans the local version and asset stores.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/errors"
)

// CleanOptions specifies what to clean from the stores.
type CleanOptions struct {
	All      bool
	Versions bool
	Assets   bool
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	TotalFreed    int64
	VersionsFreed int64
	AssetsFreed   int64
}

// Info represents store usage information.
type Info struct {
	InternalDir   string
	AssetsDir     string
	TotalSize     int64
	VersionsSize  int64
	VersionsFiles int
	AssetsSize    int64
	AssetsFiles   int
}

// Manager performs maintenance on the store directories.
type Manager struct {
	config *config.Config
}

// NewManager creates a cache manager over the store layout in cfg.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{config: cfg}
}

// Clean removes cached files according to the specified options. Cleaning a
// store removes and recreates its directory.
func (m *Manager) Clean(options CleanOptions) (*CleanResult, error) {
	result := &CleanResult{}

	// Default to cleaning all if no specific flags are set
	if !options.Versions && !options.Assets {
		options.All = true
	}

	if options.All || options.Versions {
		size, err := cleanDirectory(m.config.Settings.InternalDir)
		if err != nil {
			return nil, errors.Wrap(err, "failed to clean version store")
		}
		result.VersionsFreed = size
		result.TotalFreed += size
	}

	if options.All || options.Assets {
		size, err := cleanDirectory(m.config.Settings.AssetsDir)
		if err != nil {
			return nil, errors.Wrap(err, "failed to clean asset store")
		}
		result.AssetsFreed = size
		result.TotalFreed += size
	}

	return result, nil
}

// GetInfo returns usage information for both stores.
func (m *Manager) GetInfo() (*Info, error) {
	info := &Info{
		InternalDir: m.config.Settings.InternalDir,
		AssetsDir:   m.config.Settings.AssetsDir,
	}

	size, files, err := getDirSizeAndFiles(m.config.Settings.InternalDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to inspect version store")
	}
	info.VersionsSize = size
	info.VersionsFiles = files

	size, files, err = getDirSizeAndFiles(m.config.Settings.AssetsDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to inspect asset store")
	}
	info.AssetsSize = size
	info.AssetsFiles = files

	info.TotalSize = info.VersionsSize + info.AssetsSize
	return info, nil
}

// Describe renders the info the way the cache command prints it.
func (info *Info) Describe() string {
	return fmt.Sprintf(`Store Information:
  Version Store: %s
  Asset Store:   %s
  Total Size:    %s
  Versions:      %s (%d files)
  Assets:        %s (%d files)`,
		info.InternalDir,
		info.AssetsDir,
		FormatBytes(info.TotalSize),
		FormatBytes(info.VersionsSize),
		info.VersionsFiles,
		FormatBytes(info.AssetsSize),
		info.AssetsFiles,
	)
}

// Describe renders the result the way the cache command prints it.
func (r *CleanResult) Describe() string {
	if r.TotalFreed == 0 {
		return "No files were removed from the stores."
	}
	msg := fmt.Sprintf("Successfully cleaned stores. Freed %s of disk space.", FormatBytes(r.TotalFreed))
	if r.VersionsFreed > 0 {
		msg += fmt.Sprintf("\n- Versions: %s", FormatBytes(r.VersionsFreed))
	}
	if r.AssetsFreed > 0 {
		msg += fmt.Sprintf("\n- Assets: %s", FormatBytes(r.AssetsFreed))
	}
	return msg
}

// cleanDirectory removes a directory's contents and returns bytes freed.
func cleanDirectory(dir string) (int64, error) {
	size, _, err := getDirSizeAndFiles(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	if err := os.RemoveAll(dir); err != nil {
		return 0, errors.Wrapf(err, "failed to remove directory %s", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return size, errors.Wrapf(err, "failed to recreate directory %s", dir)
	}
	return size, nil
}

// getDirSizeAndFiles calculates directory size and file count.
func getDirSizeAndFiles(dir string) (size int64, count int, err error) {
	if _, err = os.Stat(dir); err != nil {
		return 0, 0, err
	}

	err = filepath.Walk(dir, func(_ string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.Mode().IsRegular() {
			size += info.Size()
			count++
		}
		return nil
	})
	if err != nil {
		err = errors.Wrapf(err, "error walking directory %s", dir)
	}
	return size, count, err
}

// FormatBytes converts bytes to a human-readable string.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"K", "M", "G", "T", "P", "E"}
	if exp < len(units) {
		return fmt.Sprintf("%.1f %sB", float64(bytes)/float64(div), units[exp])
	}
	return fmt.Sprintf("%d B", bytes)
}
