package library

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/fsutil"
	"github.com/glorpus-work/mcget/pkg/model"
	"github.com/glorpus-work/mcget/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Settings.InternalDir = filepath.Join(t.TempDir(), "internal")
	cfg.Settings.AssetsDir = filepath.Join(t.TempDir(), "assets")
	return cfg
}

func TestResolve_OrderAndFiltering(t *testing.T) {
	cfg := testConfig(t)
	linux := platform.Platform{OS: platform.OSLinux, Arch: "x86_64"}

	desc := &model.VersionDescriptor{Libraries: []model.Library{
		{
			Name: "com.example:first:1.0",
			Downloads: model.LibraryDownloads{Artifact: &model.Artifact{
				Path: "com/example/first/1.0/first-1.0.jar",
				URL:  "https://example.invalid/first.jar",
			}},
		},
		{
			Name:  "com.example:windows-only:1.0",
			Rules: []model.Rule{{Action: "allow", OS: model.RuleOS{Name: "windows"}}},
			Downloads: model.LibraryDownloads{Artifact: &model.Artifact{
				Path: "com/example/windows-only/1.0/windows-only-1.0.jar",
				URL:  "https://example.invalid/windows-only.jar",
			}},
		},
		{
			Name:    "org.lwjgl:lwjgl:3.3.1",
			Natives: map[string]string{"linux": "natives-linux"},
			Downloads: model.LibraryDownloads{
				Artifact: &model.Artifact{
					Path: "org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1.jar",
					URL:  "https://example.invalid/lwjgl.jar",
				},
				Classifiers: map[string]model.Artifact{
					"natives-linux": {
						Path: "org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1-natives-linux.jar",
						URL:  "https://example.invalid/lwjgl-natives.jar",
					},
				},
			},
		},
	}}

	group := download.NewGroup(download.NewClient(time.Second, ""), 4)
	res := NewResolver(cfg).Resolve(desc, linux, group)

	want := []string{
		filepath.Join(cfg.LibrariesDir(), "com/example/first/1.0/first-1.0.jar"),
		filepath.Join(cfg.NativeArchivesDir(), "lwjgl-3.3.1-natives-linux.jar"),
		filepath.Join(cfg.LibrariesDir(), "org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1.jar"),
	}
	assert.Equal(t, want, res.Classpath.Entries())
	assert.Equal(t, []string{want[1]}, res.NativeArchives)
	assert.Equal(t, 3, res.Queued)
	assert.Equal(t, 3, group.Len())
}

func TestResolve_CacheHitNotRequeued(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.LibrariesDir(), "com/example/first/1.0/first-1.0.jar")
	require.NoError(t, fsutil.EnsureFileDir(path))
	require.NoError(t, os.WriteFile(path, []byte("cached"), 0644))

	desc := &model.VersionDescriptor{Libraries: []model.Library{{
		Name: "com.example:first:1.0",
		Downloads: model.LibraryDownloads{Artifact: &model.Artifact{
			Path: "com/example/first/1.0/first-1.0.jar",
			URL:  "https://example.invalid/first.jar",
		}},
	}}}

	group := download.NewGroup(download.NewClient(time.Second, ""), 4)
	res := NewResolver(cfg).Resolve(desc, platform.Platform{OS: platform.OSLinux, Arch: "x86_64"}, group)

	assert.Equal(t, 0, res.Queued)
	assert.Equal(t, 0, group.Len())
	assert.Len(t, res.Classpath.Entries(), 1)
}

func TestResolve_MissingClassifierSkipsNative(t *testing.T) {
	cfg := testConfig(t)
	desc := &model.VersionDescriptor{Libraries: []model.Library{{
		Name:    "org.lwjgl:broken:1.0",
		Natives: map[string]string{"linux": "natives-linux"},
		Downloads: model.LibraryDownloads{
			Classifiers: map[string]model.Artifact{"natives-osx": {}},
		},
	}}}

	group := download.NewGroup(download.NewClient(time.Second, ""), 4)
	res := NewResolver(cfg).Resolve(desc, platform.Platform{OS: platform.OSLinux, Arch: "x86_64"}, group)

	assert.Empty(t, res.Classpath.Entries())
	assert.Empty(t, res.NativeArchives)
	assert.Equal(t, 0, group.Len())
}

func TestResolve_FlushMaterializesClasspath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("jar bytes"))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	desc := &model.VersionDescriptor{Libraries: []model.Library{
		{
			Name: "com.example:a:1.0",
			Downloads: model.LibraryDownloads{Artifact: &model.Artifact{
				Path: "com/example/a/1.0/a-1.0.jar", URL: srv.URL + "/a.jar",
			}},
		},
		{
			Name: "com.example:b:1.0",
			Downloads: model.LibraryDownloads{Artifact: &model.Artifact{
				Path: "com/example/b/1.0/b-1.0.jar", URL: srv.URL + "/b.jar",
			}},
		},
	}}

	group := download.NewGroup(download.NewClient(5*time.Second, ""), 2)
	res := NewResolver(cfg).Resolve(desc, platform.Platform{OS: platform.OSLinux, Arch: "x86_64"}, group)

	results := group.Flush(context.Background())
	require.Empty(t, download.Failed(results))
	for _, entry := range res.Classpath.Entries() {
		assert.FileExists(t, entry)
	}
}

func TestClasspath_String(t *testing.T) {
	var cp Classpath
	cp.Append("/a.jar")
	cp.Append("/b.jar")

	linux := platform.Platform{OS: platform.OSLinux}
	windows := platform.Platform{OS: platform.OSWindows}
	assert.Equal(t, "/a.jar:/b.jar", cp.String(linux))
	assert.Equal(t, "/a.jar;/b.jar", cp.String(windows))
}
