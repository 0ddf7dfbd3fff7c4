package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/This-Is-Prince/learning-physics/internal/sim"
)

// TrajectoryToSVG draws the ball centre path over a width x height
// surface. Surface coordinates are kept, so y grows downwards as on screen.
func TrajectoryToSVG(samples []sim.Sample, width, height int, radius float64, strokeColor string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%d" x2="%d" y2="%d" stroke="#444444" stroke-width="1"/>
`, width, height, width, height, height-1, width, height-1))

	if len(samples) >= 2 {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
		for i, s := range samples {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", s.X, s.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", s.X, s.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	if len(samples) > 0 {
		last := samples[len(samples)-1]
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s"/>
`, last.X, last.Y, radius, strokeColor))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func WriteSVG(w io.Writer, samples []sim.Sample, width, height int, radius float64, strokeColor string) error {
	_, err := io.WriteString(w, TrajectoryToSVG(samples, width, height, radius, strokeColor))
	return err
}
