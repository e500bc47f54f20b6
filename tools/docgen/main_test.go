package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *cobra.Command {
	root := &cobra.Command{Use: "dcat", Short: "Dealer catalog client"}
	vehicles := &cobra.Command{Use: "vehicles", Short: "Browse vehicles"}
	vehicles.AddCommand(&cobra.Command{Use: "list", Short: "List vehicles", Run: func(*cobra.Command, []string) {}})
	root.AddCommand(vehicles)
	return root
}

func TestRun_Markdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	n, err := run(testTree(), formatMarkdown, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(filepath.Join(dir, "dcat_vehicles_list.md"))
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, `title: "dcat vehicles list"`)
	assert.Contains(t, page, "slug: dcat_vehicles_list")
	assert.Contains(t, page, "(dcat_vehicles/)")
	assert.NotContains(t, page, "Auto generated")
}

func TestRun_Man(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	n, err := run(testTree(), formatMan, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(filepath.Join(dir, "dcat-vehicles-list.1"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "DCAT")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(testTree(), "html", t.TempDir())
	require.ErrorContains(t, err, `unknown format "html"`)

	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = run(testTree(), formatMarkdown, filepath.Join(file, "docs"))
	require.ErrorContains(t, err, "creating output directory")
}
