// Package cmd defines the servr command tree.
package cmd

import (
	"github.com/mattsolo1/servr/config"
	"github.com/spf13/cobra"
)

// loadConfig loads servr.yml, honoring the --config flag when set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}
