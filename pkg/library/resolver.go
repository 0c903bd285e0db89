// Package library resolves a version descriptor's library list into an
// ordered classpath and the set of downloads needed to materialize it.
package library

import (
	"path/filepath"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/fsutil"
	"github.com/glorpus-work/mcget/pkg/model"
	"github.com/glorpus-work/mcget/pkg/platform"
)

// Resolution is the outcome of resolving a descriptor's libraries.
type Resolution struct {
	// Classpath lists every library jar for the platform, in descriptor
	// order. The native archives are part of the classpath too.
	Classpath Classpath
	// NativeArchives are the local paths of the platform's native jars, for
	// the extraction stage. Present and missing archives both appear here.
	NativeArchives []string
	// Queued counts the downloads added to the group (cache misses).
	Queued int
}

// Resolver maps library entries to store paths and queues cache misses.
type Resolver struct {
	config *config.Config
}

// NewResolver creates a library resolver over the store layout in cfg.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{config: cfg}
}

// Resolve walks the descriptor's libraries, filters them by platform rules,
// appends each surviving jar to the classpath and adds a download to group
// for every jar not already on disk. After the group is flushed every
// classpath entry exists locally.
func (r *Resolver) Resolve(desc *model.VersionDescriptor, p platform.Platform, group *download.Group) *Resolution {
	res := &Resolution{}
	for i := range desc.Libraries {
		lib := &desc.Libraries[i]
		if !lib.Allowed(p) {
			logger.Debug("library excluded by rules", logger.Fields{"library": lib.Name})
			continue
		}

		if native, ok := lib.NativeClassifier(p); ok {
			if native == nil {
				logger.Warnf("library %s names a native classifier it does not carry, skipping", lib.Name)
			} else {
				path := filepath.Join(r.config.NativeArchivesDir(), filepath.Base(native.Path))
				res.Classpath.Append(path)
				res.NativeArchives = append(res.NativeArchives, path)
				res.Queued += r.queue(group, native, path, lib.Name)
			}
		}

		if artifact := lib.Downloads.Artifact; artifact != nil {
			path := filepath.Join(r.config.LibrariesDir(), filepath.FromSlash(artifact.Path))
			res.Classpath.Append(path)
			res.Queued += r.queue(group, artifact, path, lib.Name)
		}
	}
	return res
}

// queue adds a download for the artifact unless the file already exists.
func (r *Resolver) queue(group *download.Group, artifact *model.Artifact, path, label string) int {
	if fsutil.FileExists(path) {
		return 0
	}
	group.Add(download.Request{
		URL:      artifact.URL,
		Path:     path,
		Mode:     download.ModeFile,
		Checksum: artifact.SHA1,
		Label:    label,
	})
	return 1
}
