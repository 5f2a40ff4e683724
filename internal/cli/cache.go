package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/storylint/internal/cache"
	"github.com/ppiankov/storylint/internal/model"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the tag cache",
	Long: `Manage the part-of-speech tag cache.

Tags are memoised in memory for one run. With cache.disk_dir set they are
also kept on disk between runs; clear them after changing tagger.kind or
upgrading storylint.`,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached tag in cache.disk_dir",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cfg.Cache.DiskDir == "" {
			fmt.Fprintln(out, "No disk cache configured (cache.disk_dir is empty)")
			return nil
		}
		if err := clearCache(cfg.Cache); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Cleared %s\n", cfg.Cache.DiskDir)
		return nil
	},
}

// clearCache empties every layer the analyser would build from cfg
func clearCache(cfg model.CacheConfig) error {
	c := cache.New(cache.Options{
		MemoryTTL: cfg.MemoryTTL,
		DiskDir:   cfg.DiskDir,
		DiskTTL:   cfg.DiskTTL,
	})
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
