//go:generate mockgen -destination=./mocks/orchestrator.go . VersionResolver,LibraryResolver,AssetResolver,NativesInstaller,JavaInstaller

// Package orchestrator ties the resolver, download and installer stages
// together into the acquisition pipeline.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/assets"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/fsutil"
	"github.com/glorpus-work/mcget/pkg/hooks"
	"github.com/glorpus-work/mcget/pkg/library"
	"github.com/glorpus-work/mcget/pkg/model"
	"github.com/glorpus-work/mcget/pkg/platform"
)

// VersionResolver is the subset of the manifest resolver used by the orchestrator.
type VersionResolver interface {
	Resolve(ctx context.Context, id string) (*model.VersionDescriptor, []byte, error)
}

// LibraryResolver is the subset of the library resolver used by the orchestrator.
type LibraryResolver interface {
	Resolve(desc *model.VersionDescriptor, p platform.Platform, group *download.Group) *library.Resolution
}

// AssetResolver is the subset of the asset resolver used by the orchestrator.
type AssetResolver interface {
	Populate(ctx context.Context, desc *model.VersionDescriptor, group *download.Group) (*assets.Stats, error)
}

// NativesInstaller is the subset of the natives installer used by the orchestrator.
type NativesInstaller interface {
	Install(ctx context.Context, versionID string, archivePaths []string) (int, error)
}

// JavaInstaller is the subset of the Java installer used by the orchestrator.
type JavaInstaller interface {
	Ensure(ctx context.Context, majorVersion int, p platform.Platform) (string, error)
}

// Orchestrator ties the pipeline stages together for installs.
type Orchestrator struct {
	Versions  VersionResolver
	Libraries LibraryResolver
	Assets    AssetResolver
	Natives   NativesInstaller
	Java      JavaInstaller

	Config      *config.Config
	Client      *download.Client
	HookManager hooks.HookManager
	Hooks       Hooks // Hooks for progress and event notifications
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // resolving|libraries|downloading|assets|natives|java|done
	ID    string // version ID
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// InstallOptions control orchestrator install execution.
type InstallOptions struct {
	// Concurrency caps active transfers; zero uses the configured limit.
	Concurrency int
	// SkipAssets leaves the asset store untouched.
	SkipAssets bool
	// WithJava also ensures a matching JRE installation.
	WithJava bool
}

// Installation is the product of a completed install: everything an
// external launch layer needs to assemble a command line.
type Installation struct {
	VersionID   string
	MainClass   string
	Arguments   json.RawMessage
	Classpath   string
	NativesDir  string
	JavaHome    string
	JavaMajor   int
	AssetsIndex string
	AssetStats  *assets.Stats
	Natives     int
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Install runs the full acquisition pipeline for a version: descriptor
// resolution, library and client jar downloads, asset store population and
// natives extraction, with optional Java runtime installation.
func (o *Orchestrator) Install(ctx context.Context, versionID string, opts InstallOptions) (*Installation, error) {
	if o.Versions == nil {
		return nil, fmt.Errorf("version resolver is not configured")
	}
	if o.Libraries == nil {
		return nil, fmt.Errorf("library resolver is not configured")
	}
	if o.Config == nil {
		return nil, fmt.Errorf("configuration is not set")
	}

	p := o.targetPlatform()
	if err := o.runHook(hooks.PreAcquire, hooks.HookContext{VersionID: versionID}); err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "resolving", ID: versionID})
	desc, _, err := o.Versions.Resolve(ctx, versionID)
	if err != nil {
		return nil, err
	}

	group := download.NewGroup(o.Client, o.concurrency(opts))

	emit(o.Hooks, Event{Phase: "libraries", ID: desc.ID})
	resolution := o.Libraries.Resolve(desc, p, group)
	o.queueClientJar(desc, resolution, group)

	emit(o.Hooks, Event{Phase: "downloading", ID: desc.ID, Msg: fmt.Sprintf("%d transfers", group.Len())})
	if failed := download.Failed(group.Flush(ctx)); len(failed) > 0 {
		return nil, fmt.Errorf("%d library downloads failed, first: %w", len(failed), failed[0].Err)
	}

	install := &Installation{
		VersionID:   desc.ID,
		MainClass:   desc.MainClass,
		Arguments:   desc.Arguments,
		Classpath:   resolution.Classpath.String(p),
		NativesDir:  o.Config.NativesDir(desc.ID),
		JavaMajor:   desc.JavaInfo.MajorVersion,
		AssetsIndex: desc.AssetIndex.ID,
	}

	if !opts.SkipAssets && o.Assets != nil {
		emit(o.Hooks, Event{Phase: "assets", ID: desc.ID, Msg: desc.AssetIndex.ID})
		stats, err := o.Assets.Populate(ctx, desc, group)
		if err != nil {
			return nil, err
		}
		if len(stats.Failed) > 0 {
			return nil, fmt.Errorf("%d asset downloads failed, first: %w", len(stats.Failed), stats.Failed[0].Err)
		}
		install.AssetStats = stats
	}

	if o.Natives != nil {
		emit(o.Hooks, Event{Phase: "natives", ID: desc.ID})
		n, err := o.Natives.Install(ctx, desc.ID, resolution.NativeArchives)
		if err != nil {
			return nil, err
		}
		install.Natives = n
		if err := o.runHook(hooks.PostNatives, hooks.HookContext{
			VersionID:  desc.ID,
			NativesDir: install.NativesDir,
		}); err != nil {
			return nil, err
		}
	}

	if opts.WithJava && o.Java != nil && desc.JavaInfo.MajorVersion > 0 {
		emit(o.Hooks, Event{Phase: "java", ID: desc.ID, Msg: fmt.Sprintf("major %d", desc.JavaInfo.MajorVersion)})
		javaHome, err := o.Java.Ensure(ctx, desc.JavaInfo.MajorVersion, p)
		if err != nil {
			return nil, err
		}
		install.JavaHome = javaHome
	}

	if err := o.runHook(hooks.PostAcquire, hooks.HookContext{
		VersionID:  desc.ID,
		MainClass:  install.MainClass,
		Classpath:  install.Classpath,
		NativesDir: install.NativesDir,
	}); err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "done", ID: desc.ID})
	logger.Info("version installed", logger.Fields{"version": desc.ID})
	return install, nil
}

// queueClientJar appends the main game jar to the classpath tail and queues
// its download when missing.
func (o *Orchestrator) queueClientJar(desc *model.VersionDescriptor, resolution *library.Resolution, group *download.Group) {
	client := desc.Downloads.Client
	if client.URL == "" {
		return
	}
	jarPath := o.Config.ClientJarPath(desc.ID)
	resolution.Classpath.Append(jarPath)
	if fsutil.FileExists(jarPath) {
		return
	}
	group.Add(download.Request{
		URL:      client.URL,
		Path:     jarPath,
		Mode:     download.ModeFile,
		Checksum: client.SHA1,
		Label:    desc.ID + " client jar",
	})
}

func (o *Orchestrator) runHook(hookType hooks.HookType, ctx hooks.HookContext) error {
	if o.HookManager == nil {
		return nil
	}
	return o.HookManager.Execute(hookType, ctx)
}

func (o *Orchestrator) targetPlatform() platform.Platform {
	if o.Config.Settings.Platform.OS != "" {
		return o.Config.Settings.Platform
	}
	return platform.Current()
}

func (o *Orchestrator) concurrency(opts InstallOptions) int {
	if opts.Concurrency > 0 {
		return opts.Concurrency
	}
	if o.Config.Settings.ConnectionLimit > 0 {
		return o.Config.Settings.ConnectionLimit
	}
	return config.DefaultConnectionLimit
}
