// Package assets populates the content-addressed asset object store from a
// version's asset index.
package assets

import (
	"context"
	"fmt"
	"os"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/checksum"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/fsutil"
	"github.com/glorpus-work/mcget/pkg/model"
)

// DefaultResourcesURL is the upstream asset object host. Objects live under
// a two-hex-character shard of their own hash.
const DefaultResourcesURL = "https://resources.download.minecraft.net"

// Stats reports what populating the store did.
type Stats struct {
	// Total is the number of objects the index references.
	Total int
	// Queued is the number of objects that were missing and downloaded.
	Queued int
	// Batches is the number of flushes performed.
	Batches int
	// Failed lists the results of transfers that did not succeed.
	Failed []download.Result
}

// Resolver fetches asset indexes and fills the object store.
type Resolver struct {
	config       *config.Config
	client       *download.Client
	resourcesURL string
}

// NewResolver creates an asset resolver. An empty resourcesURL selects the
// upstream default.
func NewResolver(cfg *config.Config, client *download.Client, resourcesURL string) *Resolver {
	if resourcesURL == "" {
		resourcesURL = DefaultResourcesURL
	}
	return &Resolver{config: cfg, client: client, resourcesURL: resourcesURL}
}

// Index returns the parsed asset index the descriptor references, fetching
// and caching it as needed. An index that fails to parse is refetched once
// before the failure is reported as ErrMalformedAssetIndex.
func (r *Resolver) Index(ctx context.Context, desc *model.VersionDescriptor) (*model.AssetIndex, error) {
	ref := desc.AssetIndex
	if ref.SHA1 != "" {
		if err := checksum.ValidateHex(ref.SHA1); err != nil {
			return nil, errors.Wrapf(err, "asset index %s digest", ref.ID)
		}
	}

	path := r.config.AssetIndexPath(ref.ID)
	data, err := download.FetchCached(ctx, r.client, ref.URL, path, true, ref.SHA1)
	if err != nil {
		return nil, err
	}
	index, err := model.ParseAssetIndex(data)
	if err == nil {
		return index, nil
	}

	logger.Warnf("asset index %s failed to parse, refetching", ref.ID)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "removing stale asset index")
	}
	data, err = download.FetchCached(ctx, r.client, ref.URL, path, true, ref.SHA1)
	if err != nil {
		return nil, err
	}
	index, err = model.ParseAssetIndex(data)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedAssetIndex, "index %s: %v", ref.ID, err)
	}
	return index, nil
}

// Populate downloads every missing object the descriptor's asset index
// references. Downloads are enqueued in batches of the configured size and
// each batch is flushed before the next fills, bounding open descriptors
// even for indexes with tens of thousands of objects.
func (r *Resolver) Populate(ctx context.Context, desc *model.VersionDescriptor, group *download.Group) (*Stats, error) {
	index, err := r.Index(ctx, desc)
	if err != nil {
		return nil, err
	}
	if err := fsutil.EnsureDir(r.config.ObjectsDir()); err != nil {
		return nil, err
	}
	if err := fsutil.EnsureSymlink(r.config.ObjectsDir(), r.config.VirtualDir()); err != nil {
		return nil, err
	}

	batchSize := r.config.Settings.AssetBatchSize
	if batchSize < 1 {
		batchSize = config.DefaultAssetBatchSize
	}

	stats := &Stats{Total: len(index.Objects)}
	for name, object := range index.Objects {
		if err := checksum.ValidateHex(object.Hash); err != nil {
			logger.Warnf("asset %s carries an invalid hash %q, skipping", name, object.Hash)
			continue
		}
		path := r.config.ObjectPath(object.Hash)
		if fsutil.FileExists(path) {
			continue
		}
		group.Add(download.Request{
			URL:      r.objectURL(object.Hash),
			Path:     path,
			Mode:     download.ModeFile,
			Checksum: object.Hash,
			Label:    name,
		})
		stats.Queued++
		if group.Len() >= batchSize {
			r.flush(ctx, group, stats)
		}
	}
	if group.Len() > 0 {
		r.flush(ctx, group, stats)
	}

	logger.Debug("asset store populated", logger.Fields{
		"index":   desc.AssetIndex.ID,
		"total":   stats.Total,
		"queued":  stats.Queued,
		"batches": stats.Batches,
	})
	return stats, nil
}

func (r *Resolver) flush(ctx context.Context, group *download.Group, stats *Stats) {
	stats.Batches++
	stats.Failed = append(stats.Failed, download.Failed(group.Flush(ctx))...)
}

func (r *Resolver) objectURL(hash string) string {
	return fmt.Sprintf("%s/%s/%s", r.resourcesURL, hash[:2], hash)
}
