package cli

import (
	"fmt"

	"github.com/glorpus-work/mcget/pkg/manifest"
	"github.com/glorpus-work/mcget/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		concurrency int
		skipAssets  bool
		withJava    bool
		hookDir     string
	)

	cmd := &cobra.Command{
		Use:   "install VERSION",
		Short: "Install a game version",
		Long: `Install a game version: resolve its descriptor, download all libraries
and assets not already cached, and extract the platform's native libraries.

VERSION is an exact version id, the alias "latest" or "latest-snapshot",
or a version constraint such as "~> 1.20" which selects the newest
matching release.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], orchestrator.InstallOptions{
				Concurrency: concurrency,
				SkipAssets:  skipAssets,
				WithJava:    withJava,
			}, hookDir)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Number of parallel downloads (0=auto)")
	cmd.Flags().BoolVar(&skipAssets, "skip-assets", false, "Do not populate the asset store")
	cmd.Flags().BoolVar(&withJava, "java", false, "Also install a matching Java runtime")
	cmd.Flags().StringVar(&hookDir, "hook-dir", "", "Directory with Tengo hook scripts")

	return cmd
}

func runInstall(cmd *cobra.Command, query string, opts orchestrator.InstallOptions, hookDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch, err := buildOrchestrator(cfg, hookDir)
	if err != nil {
		return err
	}

	// Resolve aliases and constraints against the manifest up front so the
	// pipeline always works on an exact version id.
	resolver := manifest.NewResolver(cfg, newClient(cfg), cfg.Settings.ManifestURL)
	m, err := resolver.Manifest(cmd.Context())
	if err != nil {
		return err
	}
	versionID, err := manifest.Match(m, query)
	if err != nil {
		return err
	}

	install, err := orch.Install(cmd.Context(), versionID, opts)
	if err != nil {
		return fmt.Errorf("failed to install %s: %w", versionID, err)
	}

	fmt.Printf("\nInstalled %s\n", install.VersionID)
	fmt.Printf("  Main class: %s\n", install.MainClass)
	fmt.Printf("  Natives:    %s (%d libraries)\n", install.NativesDir, install.Natives)
	if install.AssetStats != nil {
		fmt.Printf("  Assets:     %d objects (%d downloaded)\n", install.AssetStats.Total, install.AssetStats.Queued)
	}
	if install.JavaHome != "" {
		fmt.Printf("  Java home:  %s\n", install.JavaHome)
	}
	fmt.Printf("  Classpath:  %s\n", install.Classpath)
	return nil
}
