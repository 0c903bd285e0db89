// Package cli implements the mcget subcommands.
package cli

import (
	"fmt"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/assets"
	"github.com/glorpus-work/mcget/pkg/config"
	"github.com/glorpus-work/mcget/pkg/download"
	"github.com/glorpus-work/mcget/pkg/hooks"
	"github.com/glorpus-work/mcget/pkg/java"
	"github.com/glorpus-work/mcget/pkg/library"
	"github.com/glorpus-work/mcget/pkg/manifest"
	"github.com/glorpus-work/mcget/pkg/natives"
	"github.com/glorpus-work/mcget/pkg/orchestrator"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig loads the configuration from the --config flag or the default
// location and applies CLI overrides.
func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	logger.InitLogger(cfg.Settings.LogLevel)
	return cfg, nil
}

// newClient builds the shared HTTP transfer client from the configuration.
func newClient(cfg *config.Config) *download.Client {
	return download.NewClient(cfg.Settings.HTTPTimeout, "mcget/"+Version)
}

// buildOrchestrator wires the pipeline stages for the install command.
func buildOrchestrator(cfg *config.Config, hookDir string) (*orchestrator.Orchestrator, error) {
	client := newClient(cfg)

	hookManager := hooks.NewHookManager()
	if hookDir != "" {
		if err := hooks.LoadHooksFromDir(hookManager, hookDir); err != nil {
			return nil, err
		}
	}

	orch := &orchestrator.Orchestrator{
		Versions:    manifest.NewResolver(cfg, client, cfg.Settings.ManifestURL),
		Libraries:   library.NewResolver(cfg),
		Assets:      assets.NewResolver(cfg, client, cfg.Settings.ResourcesURL),
		Natives:     natives.NewInstaller(cfg),
		Java:        java.NewInstaller(cfg, client, ""),
		Config:      cfg,
		Client:      client,
		HookManager: hookManager,
		Hooks: orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
			if e.Msg != "" {
				fmt.Printf("%s: %s (%s)\n", e.Phase, e.ID, e.Msg)
			} else {
				fmt.Printf("%s: %s\n", e.Phase, e.ID)
			}
		}},
	}
	return orch, nil
}
