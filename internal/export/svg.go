package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Pavel-chemist/floating-objects/internal/body"
	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

// SceneToSVG draws bodies as vector circles over a flat rectangle of color
// bg. The border is drawn as a stroke centred inside the body outline.
func SceneToSVG(bodies []body.Body, width, height int, bg canvas.RGB) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hex(bg)))

	for _, b := range bodies {
		inner := b.Radius - b.Border()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>
`, b.X, b.Y, b.Radius, hex(b.BorderColor)))
		if inner > 0 {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>
`, b.X, b.Y, inner, hex(b.Fill)))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func WriteSVG(w io.Writer, bodies []body.Body, width, height int, bg canvas.RGB) error {
	_, err := io.WriteString(w, SceneToSVG(bodies, width, height, bg))
	return err
}

func hex(c canvas.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
