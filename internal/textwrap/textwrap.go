// Package textwrap reflows text to a pixel width budget by turning spaces
// into newlines.
package textwrap

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/textenc"
)

// WidthFunc returns the pixel advance of r.
type WidthFunc func(r rune) int

// BreakLongString returns a copy of s in which spaces are replaced by
// newlines so no line exceeds budget pixels. A line breaks at its last space;
// a single word wider than the budget overflows rather than being split.
// Existing newlines start a new line. Decoding stops at the first invalid
// character and the remainder is copied unchanged.
func BreakLongString(s string, codec textenc.Codec, width WidthFunc, budget int) string {
	if s == "" || width == nil || budget <= 0 {
		return s
	}
	if codec == nil {
		codec = textenc.UTF8
	}
	out := []byte(s)
	var (
		lineWidth  int
		lastSpace  = -1
		sinceSpace int
	)
	for i := 0; i < len(out); {
		r, size := codec.Decode(out[i:])
		if size <= 0 {
			break
		}
		pos := i
		i += size
		if r == '\n' {
			lineWidth, lastSpace, sinceSpace = 0, -1, 0
			continue
		}
		w := width(r)
		space := r == ' ' && size == 1
		if lineWidth > 0 && lineWidth+w > budget {
			switch {
			case space:
				out[pos] = '\n'
				lineWidth, lastSpace, sinceSpace = 0, -1, 0
				continue
			case lastSpace >= 0:
				out[lastSpace] = '\n'
				lineWidth = sinceSpace + w
				lastSpace, sinceSpace = -1, 0
				continue
			}
		}
		lineWidth += w
		if space {
			lastSpace, sinceSpace = pos, 0
		} else {
			sinceSpace += w
		}
	}
	return string(out)
}

// Cache memoizes wrapped strings by string id so each id is reflowed once.
// Purge it whenever the source strings or the budget change.
type Cache struct {
	memo *lru.Cache[int, string]
	wrap func(string) string
}

// NewCache creates a memo holding up to size wrapped strings.
func NewCache(size int, wrap func(string) string) (*Cache, error) {
	memo, err := lru.New[int, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{memo: memo, wrap: wrap}, nil
}

// Get returns the wrapped form of s, stored under id.
func (c *Cache) Get(id int, s string) string {
	if v, ok := c.memo.Get(id); ok {
		return v
	}
	v := c.wrap(s)
	c.memo.Add(id, v)
	return v
}

// Len returns the number of memoized strings.
func (c *Cache) Len() int { return c.memo.Len() }

// Purge forgets every memoized string.
func (c *Cache) Purge() { c.memo.Purge() }
