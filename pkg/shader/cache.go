package shader

type sourceKey struct {
	kind  Kind
	stage Stage
}

// SourceCache generates each source on first request and keeps it for the
// lifetime of the owner. It is not safe for concurrent use.
type SourceCache struct {
	builder Builder
	entries map[sourceKey]Source
}

// NewSourceCache creates an empty cache over b
func NewSourceCache(b Builder) *SourceCache {
	return &SourceCache{
		builder: b,
		entries: make(map[sourceKey]Source),
	}
}

// Source returns the cached source, generating it on first use
func (c *SourceCache) Source(kind Kind, stage Stage) Source {
	key := sourceKey{kind, stage}
	if src, ok := c.entries[key]; ok {
		return src
	}
	src := c.builder.Build(kind, stage)
	c.entries[key] = src
	return src
}

// Program returns both stages of kind
func (c *SourceCache) Program(kind Kind) (vertex, fragment string) {
	return c.Source(kind, Vertex).Text, c.Source(kind, Fragment).Text
}

// Dialect returns the flags the sources were generated for
func (c *SourceCache) Dialect() DialectFlags {
	return c.builder.Dialect
}

// Len returns the number of generated sources
func (c *SourceCache) Len() int {
	return len(c.entries)
}
