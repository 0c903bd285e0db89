package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
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

type fixture struct {
	resolver       *Resolver
	config         *config.Config
	manifestHits   *atomic.Int32
	descriptorHits *atomic.Int32
}

// newFixture serves a manifest with one valid 1.20 entry backed by a real
// descriptor document whose digest matches.
func newFixture(t *testing.T, extraEntries ...model.VersionEntry) *fixture {
	t.Helper()

	descriptor := []byte(`{"id": "1.20", "mainClass": "net.minecraft.client.main.Main", "libraries": []}`)
	descriptorSum := checksum.SumBytes(descriptor)

	var manifestHits, descriptorHits atomic.Int32
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	entries := append([]model.VersionEntry{{
		ID:   "1.20",
		Type: "release",
		URL:  srv.URL + "/1.20.json",
		SHA1: descriptorSum,
	}}, extraEntries...)

	manifest := model.VersionManifest{
		Latest:   model.LatestVersions{Release: "1.20", Snapshot: "23w31a"},
		Versions: entries,
	}
	manifestJSON, err := json.Marshal(manifest)
	require.NoError(t, err)

	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, _ *http.Request) {
		manifestHits.Add(1)
		_, _ = w.Write(manifestJSON)
	})
	mux.HandleFunc("/1.20.json", func(w http.ResponseWriter, _ *http.Request) {
		descriptorHits.Add(1)
		_, _ = w.Write(descriptor)
	})

	cfg := config.DefaultConfig()
	cfg.Settings.InternalDir = filepath.Join(t.TempDir(), "internal")
	cfg.Settings.AssetsDir = filepath.Join(t.TempDir(), "assets")

	client := download.NewClient(5*time.Second, "mcget-test/1.0")
	return &fixture{
		resolver:       NewResolver(cfg, client, srv.URL+"/manifest.json"),
		config:         cfg,
		manifestHits:   &manifestHits,
		descriptorHits: &descriptorHits,
	}
}

func TestResolve_Success(t *testing.T) {
	f := newFixture(t)

	desc, raw, err := f.resolver.Resolve(context.Background(), "1.20")
	require.NoError(t, err)

	assert.Equal(t, "net.minecraft.client.main.Main", desc.MainClass)
	assert.NotEmpty(t, raw)
	assert.Equal(t, int32(1), f.manifestHits.Load())
	assert.Equal(t, int32(1), f.descriptorHits.Load())

	// The descriptor is cached at its per-version path.
	written, err := os.ReadFile(f.config.DescriptorPath("1.20"))
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(written))
}

func TestResolve_SecondRunIsOffline(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.resolver.Resolve(context.Background(), "1.20")
	require.NoError(t, err)
	_, _, err = f.resolver.Resolve(context.Background(), "1.20")
	require.NoError(t, err)

	assert.Equal(t, int32(1), f.manifestHits.Load())
	assert.Equal(t, int32(1), f.descriptorHits.Load())
}

func TestResolve_VersionNotFound(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.resolver.Resolve(context.Background(), "1.99")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrVersionNotFound)

	// No descriptor fetch is attempted for a manifest miss.
	assert.Equal(t, int32(0), f.descriptorHits.Load())
}

func TestResolve_MalformedDigestInManifest(t *testing.T) {
	f := newFixture(t, model.VersionEntry{
		ID:   "1.7.10",
		Type: "release",
		URL:  "https://example.invalid/1.7.10.json",
		SHA1: "not-a-digest",
	})

	_, _, err := f.resolver.Resolve(context.Background(), "1.7.10")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMalformedManifest)
	assert.Equal(t, int32(0), f.descriptorHits.Load())
}

func TestResolve_DescriptorChecksumMismatch(t *testing.T) {
	descriptor := []byte(`{"id": "1.20"}`)
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	manifestJSON := fmt.Sprintf(
		`{"latest": {"release": "1.20"}, "versions": [{"id": "1.20", "type": "release", "url": %q, "sha1": %q}]}`,
		srv.URL+"/1.20.json", checksum.SumBytes([]byte("different content")),
	)
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(manifestJSON))
	})
	mux.HandleFunc("/1.20.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(descriptor)
	})

	cfg := config.DefaultConfig()
	cfg.Settings.InternalDir = filepath.Join(t.TempDir(), "internal")
	resolver := NewResolver(cfg, download.NewClient(5*time.Second, ""), srv.URL+"/manifest.json")

	_, _, err := resolver.Resolve(context.Background(), "1.20")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrChecksumMismatch)
}

func TestManifest_RefetchOnParseFailure(t *testing.T) {
	f := newFixture(t)

	// Poison the cached manifest; the resolver refetches once.
	require.NoError(t, os.MkdirAll(filepath.Dir(f.config.ManifestPath()), 0755))
	require.NoError(t, os.WriteFile(f.config.ManifestPath(), []byte("{truncated"), 0644))

	m, err := f.resolver.Manifest(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, m.Find("1.20"))
	assert.Equal(t, int32(1), f.manifestHits.Load())
}

func TestRefresh_ForcesRefetch(t *testing.T) {
	f := newFixture(t)

	_, err := f.resolver.Manifest(context.Background())
	require.NoError(t, err)
	_, err = f.resolver.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), f.manifestHits.Load())
}
