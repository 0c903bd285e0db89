package cli

import (
	"fmt"

	"github.com/glorpus-work/mcget/internal/logger"
	"github.com/glorpus-work/mcget/pkg/manifest"
	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the version manifest",
		Long: `Refresh the cached version manifest by re-downloading it from the
upstream metadata server, picking up newly published versions.`,
		RunE: runSync,
	}

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resolver := manifest.NewResolver(cfg, newClient(cfg), cfg.Settings.ManifestURL)
	m, err := resolver.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to refresh manifest: %w", err)
	}

	logger.Successf("Manifest refreshed: %d versions, latest release %s", len(m.Versions), m.Latest.Release)
	return nil
}
