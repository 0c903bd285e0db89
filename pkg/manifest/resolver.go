// Package manifest resolves version identifiers against the remote version
// manifest and fetches per-version descriptors with integrity checks.
package manifest

import (
	"context"
	"os"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/checksum"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/model"
)

// DefaultManifestURL is the upstream index of all known versions.
const DefaultManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

// Resolver fetches and caches the global manifest and version descriptors.
type Resolver struct {
	config      *config.Config
	client      *download.Client
	manifestURL string
}

// NewResolver creates a version resolver. manifestURL overrides the upstream
// manifest location when non-empty (used by tests).
func NewResolver(cfg *config.Config, client *download.Client, manifestURL string) *Resolver {
	if manifestURL == "" {
		manifestURL = DefaultManifestURL
	}
	return &Resolver{config: cfg, client: client, manifestURL: manifestURL}
}

// Manifest returns the version manifest, fetching it only when it is not
// cached yet. A cached manifest that no longer parses is refetched once.
func (r *Resolver) Manifest(ctx context.Context) (*model.VersionManifest, error) {
	path := r.config.ManifestPath()
	data, err := download.FetchCached(ctx, r.client, r.manifestURL, path, true, "")
	if err != nil {
		return nil, errors.Wrap(err, "fetching version manifest")
	}

	m, parseErr := model.ParseVersionManifest(data)
	if parseErr == nil {
		return m, nil
	}

	logger.Warn("version manifest failed to parse, refetching", logger.Fields{"error": parseErr.Error()})
	data, err = r.refetchManifest(ctx)
	if err != nil {
		return nil, err
	}
	m, parseErr = model.ParseVersionManifest(data)
	if parseErr != nil {
		return nil, errors.Wrap(errors.ErrMalformedManifest, parseErr.Error())
	}
	return m, nil
}

// Refresh forces a new download of the manifest, discarding the cached copy.
// This is the cache-invalidation entry point; nothing else expires the
// manifest cache.
func (r *Resolver) Refresh(ctx context.Context) (*model.VersionManifest, error) {
	data, err := r.refetchManifest(ctx)
	if err != nil {
		return nil, err
	}
	m, parseErr := model.ParseVersionManifest(data)
	if parseErr != nil {
		return nil, errors.Wrap(errors.ErrMalformedManifest, parseErr.Error())
	}
	return m, nil
}

func (r *Resolver) refetchManifest(ctx context.Context) ([]byte, error) {
	path := r.config.ManifestPath()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "removing stale manifest %s", path)
	}
	data, err := download.FetchCached(ctx, r.client, r.manifestURL, path, true, "")
	if err != nil {
		return nil, errors.Wrap(err, "refetching version manifest")
	}
	return data, nil
}

// Resolve looks id up in the manifest and fetches that version's descriptor,
// verified against the digest the manifest carries. The raw descriptor bytes
// are returned alongside the parsed document.
func (r *Resolver) Resolve(ctx context.Context, id string) (*model.VersionDescriptor, []byte, error) {
	m, err := r.Manifest(ctx)
	if err != nil {
		return nil, nil, err
	}
	return r.ResolveFrom(ctx, m, id)
}

// ResolveFrom is Resolve against an already-fetched manifest.
func (r *Resolver) ResolveFrom(ctx context.Context, m *model.VersionManifest, id string) (*model.VersionDescriptor, []byte, error) {
	entry := m.Find(id)
	if entry == nil {
		return nil, nil, errors.Wrapf(errors.ErrVersionNotFound, "%s", id)
	}
	// A manifest entry carrying a malformed digest is a hard error; nothing
	// downstream can be verified against it.
	if err := checksum.ValidateHex(entry.SHA1); err != nil {
		return nil, nil, errors.Wrapf(errors.ErrMalformedManifest, "version %s: %v", id, err)
	}

	data, err := download.FetchCached(ctx, r.client, entry.URL, r.config.DescriptorPath(id), true, entry.SHA1)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "fetching descriptor for %s", id)
	}

	desc, err := model.ParseVersionDescriptor(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing descriptor for %s", id)
	}
	logger.Debug("resolved version descriptor", logger.Fields{
		"version":   id,
		"libraries": len(desc.Libraries),
	})
	return desc, data, nil
}
