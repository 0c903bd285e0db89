package cli

import (
	"fmt"

	"github.com/glorpus-work/mcget/pkg/cache"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command with subcommands
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local stores",
		Long:  "Clean and show information about the version and asset stores",
	}

	cmd.AddCommand(
		newCacheCleanCmd(),
		newCacheInfoCmd(),
	)

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	var (
		all      bool
		versions bool
		assetsFl bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the local stores",
		Long:  "Remove cached versions and assets to free up disk space",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCacheClean(all, versions, assetsFl)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clean everything")
	cmd.Flags().BoolVar(&versions, "versions", false, "Clean only the version store (descriptors, jars, libraries)")
	cmd.Flags().BoolVar(&assetsFl, "assets", false, "Clean only the asset store")

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show store information",
		Long:  "Display size and file counts of the version and asset stores",
		RunE:  runCacheInfo,
	}

	return cmd
}

func runCacheClean(all, versions, assets bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := cache.NewManager(cfg).Clean(cache.CleanOptions{
		All:      all,
		Versions: versions,
		Assets:   assets,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Describe())
	return nil
}

func runCacheInfo(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	info, err := cache.NewManager(cfg).GetInfo()
	if err != nil {
		return err
	}

	fmt.Println(info.Describe())
	return nil
}
