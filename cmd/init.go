package cmd

import (
	"fmt"
	"os"

	"github.com/ms-henglu/xmlmap/internal/config"
	"github.com/ms-henglu/xmlmap/internal/log"
	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Writes a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(cmd)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", path)
			}

			if err := os.WriteFile(path, config.Render(config.Default()), 0644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			log.Success(fmt.Sprintf("Config saved to %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
