package cmd

import (
	"fmt"
	"os"

	"github.com/ms-henglu/xmlmap/internal/config"
	"github.com/ms-henglu/xmlmap/internal/document"
	"github.com/ms-henglu/xmlmap/internal/log"
	"github.com/ms-henglu/xmlmap/internal/source"
	"github.com/spf13/cobra"
)

type sourceOptions struct {
	html bool
	save string
}

func addSourceFlags(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().BoolVar(&opts.html, "html", false, "Parse the source as HTML instead of XML")
}

// loadDocument reads the config, resolves src to a local file and parses it.
func loadDocument(cmd *cobra.Command, src string, opts sourceOptions) (*document.Document, *config.Config, error) {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return nil, nil, err
	}

	log.Section(fmt.Sprintf("Reading %s...", src))
	path, hit, err := source.Resolve(cmd.Context(), src, cfg.CacheDir)
	if err != nil {
		return nil, nil, err
	}
	if hit {
		log.Item("cache hit")
	}

	if opts.save != "" {
		if err := source.Save(path, opts.save); err != nil {
			return nil, nil, err
		}
		log.Item("saved to " + opts.save)
	}

	var doc *document.Document
	if opts.html {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open document: %w", err)
		}
		defer func() { _ = f.Close() }()
		doc, err = document.ParseHTML(f)
		if err != nil {
			return nil, nil, err
		}
	} else {
		doc, err = document.ParseFile(path)
		if err != nil {
			return nil, nil, err
		}
	}

	return doc, cfg, nil
}
