// Package java installs Adoptium Temurin JRE builds for the Java major
// version a game version requires.
package java

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/fsutil"
	"github.com/glorpus-work/mcget/pkg/platform"
	"github.com/mholt/archives"
)

// DefaultAPIURL is the Adoptium v3 API host.
const DefaultAPIURL = "https://api.adoptium.net"

// release is the subset of an Adoptium assets entry the installer reads.
type release struct {
	ReleaseName string `json:"release_name"`
	Binary      struct {
		Package struct {
			Link string `json:"link"`
			Name string `json:"name"`
		} `json:"package"`
	} `json:"binary"`
}

// Installer downloads and unpacks Temurin JRE archives.
type Installer struct {
	config *config.Config
	client *download.Client
	apiURL string
}

// NewInstaller creates a Java installer. An empty apiURL selects the
// Adoptium default.
func NewInstaller(cfg *config.Config, client *download.Client, apiURL string) *Installer {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Installer{config: cfg, client: client, apiURL: apiURL}
}

// Ensure makes a JRE for the major version available and returns the path
// of its installation directory. An already extracted installation is
// returned as-is without re-downloading the archive.
func (i *Installer) Ensure(ctx context.Context, majorVersion int, p platform.Platform) (string, error) {
	outDir := filepath.Join(i.config.JavaDir(), "adoptium")
	if err := fsutil.EnsureDir(outDir); err != nil {
		return "", err
	}

	rel, err := i.latest(ctx, majorVersion, p)
	if err != nil {
		return "", err
	}
	installDir := filepath.Join(outDir, rel.ReleaseName+"-jre")
	if fsutil.DirExists(installDir) {
		logger.Debug("java runtime already installed", logger.Fields{"release": rel.ReleaseName})
		return installDir, nil
	}

	archivePath := filepath.Join(outDir, fmt.Sprintf("adoptium%d.tar.gz", majorVersion))
	logger.Info("downloading java runtime", logger.Fields{"release": rel.ReleaseName, "major": majorVersion})
	result := i.client.Do(ctx, download.Request{
		URL:             rel.Binary.Package.Link,
		Path:            archivePath,
		Mode:            download.ModeFile,
		FollowRedirects: true,
		Label:           rel.Binary.Package.Name,
	})
	if result.Err != nil {
		return "", errors.Wrap(result.Err, "downloading JRE archive")
	}

	if err := extractArchive(ctx, archivePath, outDir); err != nil {
		return "", errors.Wrap(err, "extracting JRE archive")
	}
	if err := os.Remove(archivePath); err != nil {
		logger.Warnf("could not remove JRE archive %s: %v", archivePath, err)
	}
	return installDir, nil
}

// latest asks the Adoptium API for the newest release of a major version.
// The assets endpoint answers with an array ordered newest first.
func (i *Installer) latest(ctx context.Context, majorVersion int, p platform.Platform) (*release, error) {
	url := fmt.Sprintf(
		"%s/v3/assets/latest/%d/hotspot?image_type=jre&vendor=eclipse&architecture=%s&os=%s",
		i.apiURL, majorVersion, apiArch(p), apiOS(p),
	)
	result := i.client.Do(ctx, download.Request{URL: url, Mode: download.ModeMemory, FollowRedirects: true})
	if result.Err != nil {
		return nil, errors.Wrapf(result.Err, "querying Adoptium for Java %d", majorVersion)
	}

	var releases []release
	if err := json.Unmarshal(result.Body, &releases); err != nil {
		return nil, errors.Wrap(err, "parsing Adoptium response")
	}
	if len(releases) == 0 {
		return nil, errors.Wrapf(errors.ErrVersionNotFound, "no Adoptium JRE for Java %d on %s/%s", majorVersion, p.OS, p.Arch)
	}
	return &releases[0], nil
}

func extractArchive(ctx context.Context, archivePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return err
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		targetPath := filepath.Join(destDir, path)
		if d.IsDir() {
			return os.MkdirAll(targetPath, 0755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return writeSymlink(fsys, path, targetPath)
		}
		return writeRegularFile(fsys, path, targetPath, info)
	})
}

func writeSymlink(fsys fs.FS, path, targetPath string) error {
	linkFile, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = linkFile.Close() }()

	target, err := io.ReadAll(linkFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return err
	}
	_ = os.Remove(targetPath)
	return os.Symlink(string(target), targetPath)
}

func writeRegularFile(fsys fs.FS, path, targetPath string, info fs.FileInfo) error {
	srcFile, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return err
	}
	dstFile, err := fsutil.CreateFilePerm(targetPath, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	// Launcher binaries keep their executable bit.
	return os.Chmod(targetPath, info.Mode().Perm())
}

// apiOS maps a platform OS name to the Adoptium API vocabulary.
func apiOS(p platform.Platform) string {
	if p.OS == platform.OSMacOS {
		return "mac"
	}
	return p.OS
}

// apiArch maps a platform architecture to the Adoptium API vocabulary.
func apiArch(p platform.Platform) string {
	switch p.Arch {
	case "x86_64":
		return "x64"
	case "arm64":
		return "aarch64"
	default:
		return p.Arch
	}
}
