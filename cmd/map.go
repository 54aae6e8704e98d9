package cmd

import (
	"fmt"

	"github.com/ms-henglu/xmlmap/internal/tree"
	"github.com/spf13/cobra"
)

func NewMapCmd() *cobra.Command {
	var opts sourceOptions
	var all bool

	cmd := &cobra.Command{
		Use:   "map <source>",
		Short: "Prints each distinct tag once per parent as an indented outline",
		Long: `Prints the element structure of a document as an indented outline.

Children sharing a tag are collapsed into one line: tags appear in the order
they were first seen and the last element with a tag is the one whose children
are shown. Use --all (or mode = "all" in the config file) to keep every element.

The source may be a local file or any address go-getter understands, e.g.
https://example.com/books.xml. Remote documents are cached in XMLMAP_CACHE_DIR
(default ~/.xmlmap/cache).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, cfg, err := loadDocument(cmd, args[0], opts)
			if err != nil {
				return err
			}

			p := &tree.Printer{
				Style:    cfg.Style(),
				Lossless: all || cfg.Lossless(),
			}
			if err := p.Fprint(cmd.OutOrStdout(), doc.Root()); err != nil {
				return fmt.Errorf("failed to print outline: %w", err)
			}
			return nil
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.save, "save", "", "Save a copy of the source document to this path")
	cmd.Flags().BoolVar(&all, "all", false, "Keep elements that share a tag with an earlier sibling")
	return cmd
}
