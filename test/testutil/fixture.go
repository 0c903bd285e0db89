// Package testutil provides a fake upstream metadata server for integration
// tests: a version manifest, descriptors, library jars and asset objects,
// all served with consistent digests.
package testutil

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/glorpus-work/mcget/pkg/checksum"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/model"
	"github.com/glorpus-work/mcget/pkg/platform"
	"github.com/stretchr/testify/require"
)

// Fixture is a fake upstream serving one installable version.
type Fixture struct {
	Server    *httptest.Server
	VersionID string
	// Requests counts every request the fixture served.
	Requests atomic.Int32

	manifestJSON []byte
	files        map[string][]byte // URL path -> content
}

// NewFixture builds an upstream with a single release version carrying one
// ordinary library, one natives library and a couple of assets.
func NewFixture(t *testing.T, versionID string) *Fixture {
	t.Helper()
	f := &Fixture{VersionID: versionID, files: map[string][]byte{}}

	mux := http.NewServeMux()
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)

	jar := []byte("jar bytes for " + versionID)
	nativesJar := buildNativesJar(t)
	clientJar := []byte("client jar for " + versionID)

	assetIndex := model.AssetIndex{Objects: map[string]model.AssetObject{}}
	for i := 0; i < 3; i++ {
		content := []byte(fmt.Sprintf("asset %d of %s", i, versionID))
		hash := checksum.SumBytes(content)
		assetIndex.Objects[fmt.Sprintf("minecraft/lang/%d.json", i)] = model.AssetObject{
			Hash: hash, Size: int64(len(content)),
		}
		f.files["/"+hash[:2]+"/"+hash] = content
	}
	assetIndexJSON, err := json.Marshal(assetIndex)
	require.NoError(t, err)

	f.files["/libraries/com/example/lib/1.0/lib-1.0.jar"] = jar
	f.files["/libraries/org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1-natives-linux.jar"] = nativesJar
	f.files["/client/"+versionID+".jar"] = clientJar
	f.files["/indexes/"+versionID+".json"] = assetIndexJSON

	descriptor := map[string]any{
		"id":        versionID,
		"mainClass": "net.minecraft.client.main.Main",
		"assets":    versionID,
		"assetIndex": map[string]any{
			"id":   versionID,
			"url":  f.Server.URL + "/indexes/" + versionID + ".json",
			"sha1": checksum.SumBytes(assetIndexJSON),
		},
		"downloads": map[string]any{
			"client": map[string]any{
				"url":  f.Server.URL + "/client/" + versionID + ".jar",
				"sha1": checksum.SumBytes(clientJar),
				"size": len(clientJar),
			},
		},
		"javaVersion": map[string]any{"majorVersion": 17},
		"libraries": []map[string]any{
			{
				"name": "com.example:lib:1.0",
				"downloads": map[string]any{
					"artifact": map[string]any{
						"path": "com/example/lib/1.0/lib-1.0.jar",
						"url":  f.Server.URL + "/libraries/com/example/lib/1.0/lib-1.0.jar",
						"sha1": checksum.SumBytes(jar),
						"size": len(jar),
					},
				},
			},
			{
				"name":    "org.lwjgl:lwjgl:3.3.1",
				"natives": map[string]any{"linux": "natives-linux"},
				"downloads": map[string]any{
					"classifiers": map[string]any{
						"natives-linux": map[string]any{
							"path": "org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1-natives-linux.jar",
							"url":  f.Server.URL + "/libraries/org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1-natives-linux.jar",
							"sha1": checksum.SumBytes(nativesJar),
							"size": len(nativesJar),
						},
					},
				},
			},
		},
	}
	descriptorJSON, err := json.Marshal(descriptor)
	require.NoError(t, err)
	f.files["/"+versionID+".json"] = descriptorJSON

	manifest := model.VersionManifest{
		Latest: model.LatestVersions{Release: versionID, Snapshot: versionID},
		Versions: []model.VersionEntry{{
			ID:   versionID,
			Type: "release",
			URL:  f.Server.URL + "/" + versionID + ".json",
			SHA1: checksum.SumBytes(descriptorJSON),
		}},
	}
	f.manifestJSON, err = json.Marshal(manifest)
	require.NoError(t, err)
	f.files["/manifest.json"] = f.manifestJSON

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.Requests.Add(1)
		content, ok := f.files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(content)
	})

	return f
}

// ManifestURL returns the fixture's version manifest location.
func (f *Fixture) ManifestURL() string {
	return f.Server.URL + "/manifest.json"
}

// WriteConfig writes a config file pointing the engine at the fixture and at
// temp store directories, returning its path.
func (f *Fixture) WriteConfig(t *testing.T) (configPath string, cfg *config.Config) {
	t.Helper()
	cfg = config.DefaultConfig()
	cfg.Settings.InternalDir = t.TempDir()
	cfg.Settings.AssetsDir = t.TempDir()
	cfg.Settings.ManifestURL = f.ManifestURL()
	cfg.Settings.ResourcesURL = f.Server.URL
	cfg.Settings.LogLevel = "error"
	// Pin the platform so the natives-linux fixture resolves on any host.
	cfg.Settings.Platform = platform.Platform{OS: platform.OSLinux, Arch: "x86_64"}

	configPath = t.TempDir() + "/config.yaml"
	require.NoError(t, cfg.SaveConfig(configPath))
	return configPath, cfg
}

// buildNativesJar assembles a zip with one shared library member.
func buildNativesJar(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entry, err := w.Create("liblwjgl.so")
	require.NoError(t, err)
	_, err = entry.Write([]byte("elf bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
