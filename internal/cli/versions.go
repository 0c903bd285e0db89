package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/mcget/pkg/manifest"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd() *cobra.Command {
	var (
		releasesOnly bool
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List available game versions",
		Long:  "List the game versions the upstream manifest offers, newest first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersions(cmd, releasesOnly, limit)
		},
	}

	cmd.Flags().BoolVar(&releasesOnly, "releases", false, "Only list release versions")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of versions to list (0=all)")

	return cmd
}

func runVersions(cmd *cobra.Command, releasesOnly bool, limit int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resolver := manifest.NewResolver(cfg, newClient(cfg), cfg.Settings.ManifestURL)
	m, err := resolver.Manifest(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Latest release:  %s\n", m.Latest.Release)
	fmt.Printf("Latest snapshot: %s\n\n", m.Latest.Snapshot)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tTYPE")
	listed := 0
	for _, entry := range m.Versions {
		if releasesOnly && !entry.IsRelease() {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", entry.ID, entry.Type)
		listed++
		if limit > 0 && listed >= limit {
			break
		}
	}
	return w.Flush()
}
