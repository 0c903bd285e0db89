// Package natives extracts platform shared libraries out of native archives
// into a version's natives directory.
package natives

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/fsutil"
	"github.com/glorpus-work/mcget/pkg/platform"
	"github.com/mholt/archives"
)

// Installer unpacks shared libraries from native jars.
type Installer struct {
	config *config.Config
}

// NewInstaller creates a natives installer over the store layout in cfg.
func NewInstaller(cfg *config.Config) *Installer {
	return &Installer{config: cfg}
}

// Install extracts the shared-library members of every archive into the
// version's natives directory, flattening member paths so each library lands
// directly in the directory. Archives that cannot be opened are skipped with
// a warning; Install returns the number of libraries written.
func (i *Installer) Install(ctx context.Context, versionID string, archivePaths []string) (int, error) {
	destDir := i.config.NativesDir(versionID)
	if err := fsutil.EnsureDir(destDir); err != nil {
		return 0, err
	}

	installed := 0
	for _, archivePath := range archivePaths {
		n, err := i.extractArchive(ctx, archivePath, destDir)
		if err != nil {
			logger.Warnf("skipping native archive %s: %v", filepath.Base(archivePath), err)
			continue
		}
		installed += n
	}
	logger.Debug("natives installed", logger.Fields{"version": versionID, "count": installed})
	return installed, nil
}

func (i *Installer) extractArchive(ctx context.Context, archivePath, destDir string) (int, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return 0, err
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	extracted := 0
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSharedLibrary(path) {
			return nil
		}
		if err := i.writeLibrary(fsys, path, filepath.Join(destDir, filepath.Base(path))); err != nil {
			return err
		}
		extracted++
		return nil
	})
	if err != nil {
		return extracted, err
	}
	return extracted, nil
}

func (i *Installer) writeLibrary(fsys fs.FS, path, targetPath string) error {
	srcFile, err := fsys.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening archive member %s", path)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrFileOpen, targetPath)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Wrapf(err, "extracting %s", path)
	}
	return nil
}

// isSharedLibrary matches archive members by shared-library suffix on any
// platform, so a mislabeled archive never deposits jars or manifests into
// the natives directory.
func isSharedLibrary(path string) bool {
	for _, suffix := range platform.SharedLibrarySuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
