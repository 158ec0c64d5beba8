// Package textenc decodes locale-encoded byte strings one character at a time.
package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Codec decodes the first character of b. A size <= 0 reports a decode
// failure; callers stop processing the string at that point.
type Codec interface {
	Name() string
	Decode(b []byte) (r rune, size int)
}

type utf8Codec struct{}

// UTF8 decodes standard UTF-8 text.
var UTF8 Codec = utf8Codec{}

func (utf8Codec) Name() string { return "utf-8" }

func (utf8Codec) Decode(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 0
	}
	return r, size
}

// shiftJIS decodes Shift-JIS through x/text, one lead/trail pair at a time.
type shiftJIS struct {
	enc encoding.Encoding
}

// ShiftJIS decodes Japanese Shift-JIS text.
var ShiftJIS Codec = shiftJIS{enc: japanese.ShiftJIS}

func (shiftJIS) Name() string { return "shift-jis" }

func (c shiftJIS) Decode(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	size := 1
	if lead := b[0]; (lead >= 0x81 && lead <= 0x9f) || (lead >= 0xe0 && lead <= 0xfc) {
		size = 2
	}
	if len(b) < size {
		return utf8.RuneError, 0
	}
	out, err := c.enc.NewDecoder().Bytes(b[:size])
	if err != nil {
		return utf8.RuneError, 0
	}
	r, n := utf8.DecodeRune(out)
	if r == utf8.RuneError || n != len(out) {
		return utf8.RuneError, 0
	}
	return r, size
}

type singleByte struct {
	name string
	cm   *charmap.Charmap
}

// Windows1252 decodes Western European single-byte text.
var Windows1252 Codec = singleByte{name: "windows-1252", cm: charmap.Windows1252}

func (c singleByte) Name() string { return c.name }

func (c singleByte) Decode(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	r := c.cm.DecodeByte(b[0])
	if r == utf8.RuneError {
		return r, 0
	}
	return r, 1
}

var byName = map[string]Codec{
	"utf-8":        UTF8,
	"utf8":         UTF8,
	"shift-jis":    ShiftJIS,
	"sjis":         ShiftJIS,
	"windows-1252": Windows1252,
	"cp1252":       Windows1252,
}

// Lookup resolves a codec by name. Unknown names report false.
func Lookup(name string) (Codec, bool) {
	c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Runes decodes s up to n bytes and stops at the first failure. It returns
// the decoded runes and the byte offset of each.
func Runes(c Codec, s string, n int) ([]rune, []int) {
	if c == nil {
		c = UTF8
	}
	if n < 0 || n > len(s) {
		n = len(s)
	}
	b := []byte(s[:n])
	runes := make([]rune, 0, len(b))
	offsets := make([]int, 0, len(b))
	for i := 0; i < len(b); {
		r, size := c.Decode(b[i:])
		if size <= 0 {
			break
		}
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += size
	}
	return runes, offsets
}
