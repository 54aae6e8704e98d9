package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	var opts sourceOptions
	var indent int

	cmd := &cobra.Command{
		Use:   "show <source>",
		Short: "Prints the document, re-indented",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDocument(cmd, args[0], opts)
			if err != nil {
				return err
			}

			out, err := doc.String(indent)
			if err != nil {
				return fmt.Errorf("failed to serialize document: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return err
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().IntVar(&indent, "indent", 2, "Spaces per level, 0 prints the document compact")
	return cmd
}
