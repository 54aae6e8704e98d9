package cmd

import (
	"fmt"

	"github.com/ms-henglu/xmlmap/internal/tree"
	"github.com/spf13/cobra"
)

func NewTreeCmd() *cobra.Command {
	var opts sourceOptions

	cmd := &cobra.Command{
		Use:   "tree <source>",
		Short: "Prints every element of a document as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDocument(cmd, args[0], opts)
			if err != nil {
				return err
			}
			if err := tree.FprintTree(cmd.OutOrStdout(), doc.Root()); err != nil {
				return fmt.Errorf("failed to print tree: %w", err)
			}
			return nil
		},
	}

	addSourceFlags(cmd, &opts)
	return cmd
}
