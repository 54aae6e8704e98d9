package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewListCmd() *cobra.Command {
	var opts sourceOptions
	var recursive bool

	cmd := &cobra.Command{
		Use:   "list <source>",
		Short: "Prints the root tag followed by the tags of its children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDocument(cmd, args[0], opts)
			if err != nil {
				return err
			}

			tags := doc.Iter()
			if !recursive {
				tags = append([]string{doc.Root().Tag}, doc.Children()...)
			}
			for _, tag := range tags {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), tag); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "List every element in document order")
	return cmd
}
