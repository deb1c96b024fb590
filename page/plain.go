package page

import (
	"fmt"
	"io"
	"strings"
)

// RenderPlain writes a plain-text rendition of the page when no screen can
// be acquired at all. Last rung of the degradation ladder: the page always
// shows something, and never reports the failure to the viewer
func RenderPlain(w io.Writer) {
	line := strings.Repeat("─", 62)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", strings.TrimSpace(badgeText))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", headlineTop, headlineBottom)
	fmt.Fprintln(w)
	for _, l := range wrap(subCopy, 60) {
		fmt.Fprintf(w, "  %s\n", l)
	}
	fmt.Fprintf(w, "  %s\n", line)
	for _, f := range features {
		fmt.Fprintf(w, "  %-18s %s\n", f.title, f.desc)
	}
	fmt.Fprintf(w, "  %s\n", line)
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = s.value + " " + s.label
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, "    "))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", footerText)
	fmt.Fprintln(w)
}
