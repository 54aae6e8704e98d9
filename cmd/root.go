package cmd

import (
	"github.com/ms-henglu/xmlmap/internal/log"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "xmlmap.hcl"

func NewRootCmd(version string) *cobra.Command {
	var verbose bool
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "xmlmap",
		Short:         "Outlines the element structure of XML documents " + version,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "Path to the xmlmap config file")

	rootCmd.AddCommand(NewMapCmd())
	rootCmd.AddCommand(NewTreeCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewFindCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewInitCmd())

	return rootCmd
}

// configPath returns the --config value, or the default when the command
// runs without the root command.
func configPath(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil {
		return f.Value.String()
	}
	return defaultConfigFile
}
