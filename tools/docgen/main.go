// Package main writes the dcat CLI reference as markdown pages or man pages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/dealer-catalog/cmd/dcat/cmd"
)

const (
	formatMarkdown = "markdown"
	formatMan      = "man"
)

// frontMatter heads every markdown page so the docs site can title it.
const frontMatter = `---
title: %q
slug: %s
---

`

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated pages")
	format := flag.String("format", formatMarkdown, "page format: markdown or man")
	flag.Parse()

	n, err := run(cmd.Root(), *format, *output)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d %s pages for dcat generated in %s/\n", n, *format, *output)
}

// run renders the command tree under root into dir and reports how many
// pages were written.
func run(root *cobra.Command, format, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true

	switch format {
	case formatMarkdown:
		prepend := func(filename string) string {
			name := strings.TrimSuffix(filepath.Base(filename), path.Ext(filename))
			return fmt.Sprintf(frontMatter, strings.ReplaceAll(name, "_", " "), name)
		}
		link := func(name string) string {
			return strings.TrimSuffix(name, path.Ext(name)) + "/"
		}
		if err := doc.GenMarkdownTreeCustom(root, dir, prepend, link); err != nil {
			return 0, fmt.Errorf("generating markdown: %w", err)
		}
	case formatMan:
		header := &doc.GenManHeader{Title: "DCAT", Section: "1", Source: "dealer-catalog"}
		if err := doc.GenManTree(root, header, dir); err != nil {
			return 0, fmt.Errorf("generating man pages: %w", err)
		}
	default:
		return 0, fmt.Errorf("unknown format %q", format)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("listing output: %w", err)
	}
	return len(entries), nil
}
