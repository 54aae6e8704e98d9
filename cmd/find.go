package cmd

import (
	"fmt"

	"github.com/ms-henglu/xmlmap/internal/log"
	"github.com/spf13/cobra"
)

func NewFindCmd() *cobra.Command {
	var opts sourceOptions
	var contains string

	cmd := &cobra.Command{
		Use:   "find <source> <tag>",
		Short: "Prints every element with the given tag and its text",
		Long: `Prints every element with the given tag as "tag - text", in document order.

With --contains only elements whose text contains the given string are printed.
For HTML documents the tag may be any CSS selector.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDocument(cmd, args[0], opts)
			if err != nil {
				return err
			}

			matches, err := doc.Find(args[1], contains)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				log.Hint(fmt.Sprintf("No %q elements found.", args[1]))
				return nil
			}

			for _, m := range matches {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", m.Tag, m.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().StringVar(&contains, "contains", "", "Only print elements whose text contains this string")
	return cmd
}
