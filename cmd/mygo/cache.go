package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mygo/internal/driver"
)

const cacheApp = "mygo"

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the token cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all cached token streams",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenTokenCache(cacheApp)
		if err != nil {
			return err
		}
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.Dir())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}
