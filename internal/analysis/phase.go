package analysis

import (
	"strings"

	"ecosim/internal/sim"
)

// PhasePortraitToASCII renders the predator-vs-prey phase trajectory as
// ASCII art. Closed orbits show up as rings around the equilibrium point.
func PhasePortraitToASCII(s *sim.Series, width, height int) string {
	if s == nil || s.Len() == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := s.Prey[0], s.Prey[0]
	minY, maxY := s.Predator[0], s.Predator[0]

	for i := 0; i < s.Len(); i++ {
		x, y := s.Prey[i], s.Predator[i]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := 0; i < s.Len(); i++ {
		col := int((s.Prey[i] - minX) / rangeX * float64(width-1))
		row := height - 1 - int((s.Predator[i]-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// Mark start and end of the trajectory.
	markPoint := func(x, y float64, r rune) {
		col := int((x - minX) / rangeX * float64(width-1))
		row := height - 1 - int((y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = r
		}
	}
	markPoint(s.Prey[0], s.Predator[0], 'S')
	n := s.Len() - 1
	markPoint(s.Prey[n], s.Predator[n], 'E')

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
