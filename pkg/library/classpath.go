package library

import (
	"strings"

	"github.com/glorpus-work/mcget/pkg/platform"
)

// Classpath is an ordered list of jar paths. Order follows the descriptor's
// library list, with the client jar appended last by the install pipeline.
type Classpath struct {
	entries []string
}

// Append adds a path to the end of the classpath.
func (c *Classpath) Append(path string) {
	c.entries = append(c.entries, path)
}

// Entries returns the paths in order.
func (c *Classpath) Entries() []string {
	return c.entries
}

// Len returns the number of entries.
func (c *Classpath) Len() int {
	return len(c.entries)
}

// String joins the entries with the platform's path-list separator. There is
// no trailing separator.
func (c *Classpath) String(p platform.Platform) string {
	return strings.Join(c.entries, p.ClasspathSeparator())
}
