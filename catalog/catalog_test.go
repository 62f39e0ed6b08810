package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, c.Services)
	require.NotEmpty(t, c.Categories)
	require.NotEmpty(t, c.Connections)

	// Every service belongs to a declared category.
	categories := make(map[string]bool)
	for _, cat := range c.Categories {
		categories[cat.ID] = true
	}
	for _, s := range c.Services {
		require.Truef(t, categories[s.Category],
			"service %q references unknown category %q", s.ID, s.Category)
	}

	// Every shipped connection resolves.
	require.Len(t, c.ResolvedLinks(), len(c.Connections))
}

func TestResolvedLinksSkipsDangling(t *testing.T) {
	c := &Catalog{
		Services: []Service{
			{ID: "a", Name: "A", Category: "compute"},
			{ID: "b", Name: "B", Category: "compute"},
		},
		Connections: []Link{
			{From: "a", To: "b"},
			{From: "a", To: "ghost"},
			{From: "ghost", To: "b"},
		},
	}
	links := c.ResolvedLinks()
	require.Len(t, links, 1)
	require.Equal(t, "a", links[0].From)
	require.Equal(t, "b", links[0].To)
}

func TestValidateRejectsDuplicates(t *testing.T) {
	c := &Catalog{Services: []Service{
		{ID: "dup", Name: "One"},
		{ID: "dup", Name: "Two"},
	}}
	require.Error(t, c.validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.toml")
	data := `
[[categories]]
id = "compute"
title = "Compute"
color = "#ff0000"

[[services]]
id = "one"
name = "One"
category = "compute"

[[services]]
id = "two"
name = "Two"
category = "compute"

[[connections]]
from = "one"
to = "two"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Services, 2)
	require.Len(t, c.ResolvedLinks(), 1)
	require.Equal(t, []string{"compute"}, c.CategoryOrder())
	require.Equal(t, "Compute", c.CategoryTitles()["compute"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/map.toml")
	require.Error(t, err)
}
