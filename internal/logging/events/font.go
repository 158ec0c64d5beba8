package events

import (
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging"
	"github.com/dustin/go-humanize"
)

type FontTracer struct{}

var Font = FontTracer{}

func (FontTracer) Loaded(source string, size int, sub bool) {
	logging.Trace("font.loaded", map[string]interface{}{
		"source": source,
		"size":   humanize.Bytes(uint64(size)),
		"sub":    sub,
	})
}

func (FontTracer) Fallback(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("font.fallback", payload)
}

func (FontTracer) AtlasPage(font string, pages int) {
	logging.Trace("font.atlas-page", map[string]interface{}{"font": font, "pages": pages})
}

func (FontTracer) AtlasFull(font string, r rune, pages int) {
	logging.Trace("font.atlas-full", map[string]interface{}{"font": font, "rune": string(r), "pages": pages})
}

func (FontTracer) MissingGlyph(r rune) {
	logging.Trace("font.missing-glyph", map[string]interface{}{"rune": string(r), "code": int(r)})
}
