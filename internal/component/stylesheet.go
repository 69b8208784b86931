package component

import "strings"

// StyleBlock is the scoped stylesheet of one component.
type StyleBlock struct {
	Component string
	CSS       string
}

// Stylesheet is an immutable snapshot of the scoped component styles.
type Stylesheet struct {
	blocks []StyleBlock
}

// Stylesheet snapshots the scoped styles of every component rendered so far,
// ordered by component name. Components without style rules contribute nothing.
func (r *Registry) Stylesheet() Stylesheet {
	r.mu.Lock()
	defer r.mu.Unlock()

	var blocks []StyleBlock
	for _, name := range r.names {
		scoped, ok := r.scoped[name]
		if !ok || scoped.CSS == "" {
			continue
		}
		blocks = append(blocks, StyleBlock{Component: name, CSS: scoped.CSS})
	}
	return Stylesheet{blocks: blocks}
}

// Blocks returns a copy of the style blocks.
func (s Stylesheet) Blocks() []StyleBlock {
	return append([]StyleBlock(nil), s.blocks...)
}

// Len returns the number of style blocks.
func (s Stylesheet) Len() int {
	return len(s.blocks)
}

// String concatenates every block.
func (s Stylesheet) String() string {
	var b strings.Builder
	for _, block := range s.blocks {
		b.WriteString(block.CSS)
	}
	return b.String()
}

// HeadHTML wraps the stylesheet in a single <style> element, or returns "" when empty.
func (s Stylesheet) HeadHTML() string {
	if len(s.blocks) == 0 {
		return ""
	}
	return "<style>\n" + s.String() + "</style>"
}
