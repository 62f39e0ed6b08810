// Package catalog loads the service map dataset: services, their
// categories, and the connections between them. A default dataset is
// embedded so the viewer runs without any external files.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/theted/aws-concept-map/core"
)

//go:embed data.toml
var defaultData []byte

// Service is one labeled node in the map.
type Service struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
}

// Category carries display metadata for a group heading.
type Category struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Color string `toml:"color"` // hex, e.g. "#f58536"
}

// Link is an undirected connection between two services.
type Link struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Catalog is a parsed dataset.
type Catalog struct {
	Categories  []Category `toml:"categories"`
	Services    []Service  `toml:"services"`
	Connections []Link     `toml:"connections"`
}

// Default parses the embedded dataset.
func Default() (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(defaultData, &c); err != nil {
		return nil, fmt.Errorf("parsing embedded dataset: %w", err)
	}
	return &c, c.validate()
}

// Load parses a dataset from a TOML file.
func Load(path string) (*Catalog, error) {
	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}
	return &c, c.validate()
}

// validate rejects datasets with duplicate or empty service ids. Dangling
// connections are not an error here; they are dropped by ResolvedLinks.
func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		if s.ID == "" {
			return fmt.Errorf("service %q has no id", s.Name)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate service id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Nodes converts services into layout input nodes, with widths taken from
// the supplied width map.
func (c *Catalog) Nodes(widths map[string]float64) []core.Node {
	nodes := make([]core.Node, 0, len(c.Services))
	for _, s := range c.Services {
		nodes = append(nodes, core.Node{
			Key:      s.ID,
			Name:     s.Name,
			Category: s.Category,
			Width:    widths[s.ID],
		})
	}
	return nodes
}

// Labels returns the id-to-display-name map used for width measurement.
func (c *Catalog) Labels() map[string]string {
	labels := make(map[string]string, len(c.Services))
	for _, s := range c.Services {
		labels[s.ID] = s.Name
	}
	return labels
}

// ResolvedLinks returns connections whose endpoints both resolve to known
// services. Dangling links are skipped, not reported.
func (c *Catalog) ResolvedLinks() []core.Connection {
	known := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		known[s.ID] = true
	}
	conns := make([]core.Connection, 0, len(c.Connections))
	for _, l := range c.Connections {
		if known[l.From] && known[l.To] {
			conns = append(conns, core.Connection{From: l.From, To: l.To})
		}
	}
	return conns
}

// CategoryTitles returns display titles keyed by category id.
func (c *Catalog) CategoryTitles() map[string]string {
	titles := make(map[string]string, len(c.Categories))
	for _, cat := range c.Categories {
		titles[cat.ID] = cat.Title
	}
	return titles
}

// CategoryColors returns hex colors keyed by category id.
func (c *Catalog) CategoryColors() map[string]string {
	colors := make(map[string]string, len(c.Categories))
	for _, cat := range c.Categories {
		colors[cat.ID] = cat.Color
	}
	return colors
}

// CategoryOrder returns category ids in dataset order, which is the
// placement priority for the layout engine.
func (c *Catalog) CategoryOrder() []string {
	order := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		order = append(order, cat.ID)
	}
	return order
}
