package page

import (
	"fmt"
	"math"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"terraglow/render"
	"terraglow/status"
)

// Chrome palette
var (
	dimColor   = render.RGB{105, 115, 132}
	copyColor  = render.RGB{168, 178, 194}
	badgeFg    = render.RGB{140, 235, 200}
	badgeBg    = render.RGB{18, 48, 40}
	statColor  = render.RGB{235, 240, 248}
	boxColor   = render.RGB{70, 82, 102}
	titleColor = render.RGB{210, 220, 235}

	// Headline sweep endpoints, blended perceptually per column
	gradA = render.RGB{70, 220, 170}
	gradB = render.RGB{95, 150, 255}
)

// Rounded box charset: TL, H, TR, V, BL, BR
var boxChars = [6]rune{'╭', '─', '╮', '│', '╰', '╯'}

// drawChrome paints the page furniture and returns the viewport left for
// the globe. Layout collapses gracefully on small terminals: feature cards
// drop below 30 rows, the sub copy wraps, the globe takes what remains
func drawChrome(buf *render.Buffer, w, h int, elapsed float64, reg *status.Registry, mode Mode) render.Rect {
	drawCentered(buf, w, 1, badgeText, badgeFg, badgeBg)
	drawGradientCentered(buf, w, 3, headlineTop, elapsed)
	drawGradientCentered(buf, w, 4, headlineBottom, elapsed)

	headerEnd := 6
	for _, line := range wrap(subCopy, minInt(w-8, 76)) {
		drawCentered(buf, w, headerEnd, line, copyColor, render.RGBBlack)
		headerEnd++
	}
	headerEnd++

	bottomStart := h - 3
	if h >= 30 && w >= 84 {
		drawFeatureCards(buf, w, h-9)
		bottomStart = h - 10
	} else if h >= 20 {
		drawFeatureLine(buf, w, h-4)
		bottomStart = h - 5
	}

	drawStats(buf, w, h-3)
	drawFooter(buf, w, h-1, reg, mode)

	vh := bottomStart - headerEnd
	if vh < 4 {
		vh = 4
	}
	return render.Rect{X: 0, Y: headerEnd, W: w, H: vh}
}

func drawFeatureCards(buf *render.Buffer, w, y int) {
	const cardH = 4
	cardW := minInt(30, (w-8)/len(features))
	total := cardW*len(features) + 2*(len(features)-1)
	x := (w - total) / 2

	for _, f := range features {
		drawBox(buf, x, y, cardW, cardH)
		drawText(buf, x+2, y+1, runewidth.Truncate(f.title, cardW-4, "…"), titleColor, render.RGBBlack)
		drawText(buf, x+2, y+2, runewidth.Truncate(f.desc, cardW-4, "…"), dimColor, render.RGBBlack)
		x += cardW + 2
	}
}

func drawFeatureLine(buf *render.Buffer, w, y int) {
	parts := make([]string, len(features))
	for i, f := range features {
		parts[i] = f.title
	}
	drawCentered(buf, w, y, strings.Join(parts, "   ·   "), dimColor, render.RGBBlack)
}

func drawStats(buf *render.Buffer, w, y int) {
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = s.value + " " + s.label
	}
	drawCentered(buf, w, y, strings.Join(parts, "    "), statColor, render.RGBBlack)
}

func drawFooter(buf *render.Buffer, w, y int, reg *status.Registry, mode Mode) {
	drawText(buf, 2, y, footerText, dimColor, render.RGBBlack)

	hud := fmt.Sprintf("%s · %.0f fps", mode, reg.FPS.Load())
	drawText(buf, w-runewidth.StringWidth(hud)-2, y, hud, dimColor, render.RGBBlack)
}

func drawBox(buf *render.Buffer, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	buf.SetFgOnly(x, y, boxChars[0], boxColor)
	buf.SetFgOnly(x+w-1, y, boxChars[2], boxColor)
	buf.SetFgOnly(x, y+h-1, boxChars[4], boxColor)
	buf.SetFgOnly(x+w-1, y+h-1, boxChars[5], boxColor)
	for i := 1; i < w-1; i++ {
		buf.SetFgOnly(x+i, y, boxChars[1], boxColor)
		buf.SetFgOnly(x+i, y+h-1, boxChars[1], boxColor)
	}
	for i := 1; i < h-1; i++ {
		buf.SetFgOnly(x, y+i, boxChars[3], boxColor)
		buf.SetFgOnly(x+w-1, y+i, boxChars[3], boxColor)
	}
}

// drawText writes a string advancing by display width, returns end column
func drawText(buf *render.Buffer, x, y int, s string, fg, bg render.RGB) int {
	for _, r := range s {
		if bg == render.RGBBlack {
			buf.SetFgOnly(x, y, r, fg)
		} else {
			buf.Set(x, y, r, fg, bg, render.BlendReplace, 1.0)
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

func drawCentered(buf *render.Buffer, w, y int, s string, fg, bg render.RGB) {
	drawText(buf, (w-runewidth.StringWidth(s))/2, y, s, fg, bg)
}

// drawGradientCentered sweeps the headline colors slowly back and forth,
// the terminal stand-in for the animated background-shift gradient
func drawGradientCentered(buf *render.Buffer, w, y int, s string, elapsed float64) {
	width := runewidth.StringWidth(s)
	x := (w - width) / 2
	phase := 0.5 + 0.5*math.Sin(elapsed*0.4)

	col := 0
	for _, r := range s {
		t := float64(col)/math.Max(1, float64(width-1))*0.7 + phase*0.3
		buf.SetFgOnly(x, y, r, render.Gradient(gradA, gradB, t))
		x += runewidth.RuneWidth(r)
		col += runewidth.RuneWidth(r)
	}
}

func wrap(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(s)
	var lines []string
	line := ""
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if runewidth.StringWidth(line)+1+runewidth.StringWidth(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
