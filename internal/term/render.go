package term

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const halfBlock = "▀"

// Render samples frame onto a cols x rows grid of half-block cells. Each cell
// shows two vertically stacked pixels: the top one as foreground and the
// bottom one as background. Runs of equal cells share one style.
func Render(frame *image.RGBA, cols, rows int) string {
	if frame == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := frame.Bounds()
	if b.Empty() {
		return ""
	}
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		top := sampleY(b, row*2, rows*2)
		bottom := sampleY(b, row*2+1, rows*2)
		var run strings.Builder
		var runFG, runBG lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(runFG).Background(runBG)
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < cols; col++ {
			x := b.Min.X + col*b.Dx()/cols
			fg, bg := hex(frame.At(x, top)), hex(frame.At(x, bottom))
			if run.Len() > 0 && (fg != runFG || bg != runBG) {
				flush()
			}
			runFG, runBG = fg, bg
			run.WriteString(halfBlock)
		}
		flush()
	}
	return sb.String()
}

// Fit returns the largest grid no bigger than cols x rows that keeps the
// frame's aspect ratio, assuming cells twice as tall as wide.
func Fit(frame image.Rectangle, cols, rows int) (int, int) {
	if frame.Empty() || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	w, h := frame.Dx(), frame.Dy()
	fitCols := cols
	fitRows := fitCols * h / w / 2
	if fitRows > rows {
		fitRows = rows
		fitCols = fitRows * 2 * w / h
	}
	if fitCols < 1 {
		fitCols = 1
	}
	if fitRows < 1 {
		fitRows = 1
	}
	return fitCols, fitRows
}

func sampleY(b image.Rectangle, i, n int) int {
	return b.Min.Y + i*b.Dy()/n
}

func hex(c color.Color) lipgloss.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color(cf.Hex())
}
