package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glorpus-work/mcget/pkg/checksum"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assetServer serves an index plus the sharded objects it references.
type assetServer struct {
	srv       *httptest.Server
	indexJSON []byte
	indexHits atomic.Int32
	objects   map[string][]byte // hash -> content
}

func newAssetServer(t *testing.T, count int) *assetServer {
	t.Helper()
	a := &assetServer{objects: map[string][]byte{}}

	index := model.AssetIndex{Objects: map[string]model.AssetObject{}}
	for i := 0; i < count; i++ {
		content := []byte(fmt.Sprintf("asset content %d", i))
		hash := checksum.SumBytes(content)
		a.objects[hash] = content
		index.Objects[fmt.Sprintf("minecraft/sounds/%d.ogg", i)] = model.AssetObject{
			Hash: hash, Size: int64(len(content)),
		}
	}
	var err error
	a.indexJSON, err = json.Marshal(index)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/indexes/", func(w http.ResponseWriter, _ *http.Request) {
		a.indexHits.Add(1)
		_, _ = w.Write(a.indexJSON)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hash := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		content, ok := a.objects[hash]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(content)
	})
	a.srv = httptest.NewServer(mux)
	t.Cleanup(a.srv.Close)
	return a
}

func (a *assetServer) descriptor() *model.VersionDescriptor {
	return &model.VersionDescriptor{
		ID: "1.20",
		AssetIndex: model.AssetIndexRef{
			ID:   "8",
			URL:  a.srv.URL + "/indexes/8.json",
			SHA1: checksum.SumBytes(a.indexJSON),
		},
	}
}

func newTestResolver(t *testing.T, a *assetServer) (*Resolver, *config.Config) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Settings.InternalDir = filepath.Join(t.TempDir(), "internal")
	cfg.Settings.AssetsDir = filepath.Join(t.TempDir(), "assets")
	cfg.Settings.AssetBatchSize = 8
	client := download.NewClient(5*time.Second, "")
	return NewResolver(cfg, client, a.srv.URL), cfg
}

func TestPopulate_FillsObjectStore(t *testing.T) {
	server := newAssetServer(t, 5)
	resolver, cfg := newTestResolver(t, server)
	group := download.NewGroup(download.NewClient(5*time.Second, ""), 4)

	stats, err := resolver.Populate(context.Background(), server.descriptor(), group)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 5, stats.Queued)
	assert.Empty(t, stats.Failed)
	for hash, content := range server.objects {
		got, err := os.ReadFile(cfg.ObjectPath(hash))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	}

	// The virtual alias points at the object store.
	target, err := os.Readlink(cfg.VirtualDir())
	require.NoError(t, err)
	assert.Equal(t, cfg.ObjectsDir(), target)
}

func TestPopulate_BatchesBoundTheQueue(t *testing.T) {
	server := newAssetServer(t, 20)
	resolver, _ := newTestResolver(t, server) // batch size 8
	group := download.NewGroup(download.NewClient(5*time.Second, ""), 4)

	stats, err := resolver.Populate(context.Background(), server.descriptor(), group)
	require.NoError(t, err)

	// 20 objects at batch size 8: two full flushes plus the remainder.
	assert.Equal(t, 20, stats.Queued)
	assert.Equal(t, 3, stats.Batches)
	assert.Equal(t, 0, group.Len())
}

func TestPopulate_ExistingObjectsSkipped(t *testing.T) {
	server := newAssetServer(t, 3)
	resolver, _ := newTestResolver(t, server)
	group := download.NewGroup(download.NewClient(5*time.Second, ""), 4)

	_, err := resolver.Populate(context.Background(), server.descriptor(), group)
	require.NoError(t, err)

	stats, err := resolver.Populate(context.Background(), server.descriptor(), group)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Queued)
	assert.Equal(t, 0, stats.Batches)
}

func TestPopulate_FailuresReportedNotFatal(t *testing.T) {
	server := newAssetServer(t, 2)
	// Drop one object from the backing store so its fetch 404s.
	for hash := range server.objects {
		delete(server.objects, hash)
		break
	}
	resolver, _ := newTestResolver(t, server)
	group := download.NewGroup(download.NewClient(5*time.Second, ""), 4)

	stats, err := resolver.Populate(context.Background(), server.descriptor(), group)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Queued)
	assert.Len(t, stats.Failed, 1)
	assert.ErrorIs(t, stats.Failed[0].Err, errors.ErrTransport)
}

func TestIndex_RefetchOnParseFailure(t *testing.T) {
	server := newAssetServer(t, 1)
	resolver, cfg := newTestResolver(t, server)

	desc := server.descriptor()
	desc.AssetIndex.SHA1 = "" // the poisoned cache below has a different digest
	path := cfg.AssetIndexPath(desc.AssetIndex.ID)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	index, err := resolver.Index(context.Background(), desc)
	require.NoError(t, err)
	assert.Len(t, index.Objects, 1)
	assert.Equal(t, int32(1), server.indexHits.Load())
}

func TestIndex_PersistentlyMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Settings.InternalDir = filepath.Join(t.TempDir(), "internal")
	cfg.Settings.AssetsDir = filepath.Join(t.TempDir(), "assets")
	resolver := NewResolver(cfg, download.NewClient(5*time.Second, ""), srv.URL)

	_, err := resolver.Index(context.Background(), &model.VersionDescriptor{
		AssetIndex: model.AssetIndexRef{ID: "8", URL: srv.URL + "/8.json"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMalformedAssetIndex)
}
