package drag

import (
	"math"

	"github.com/meur/tierboard/internal/models"
)

// DetectTarget picks the droppable under the pointer. Droppables containing
// the pointer win, the smallest one first so an item beats the container
// around it. When nothing contains the pointer the nearest center is used.
func DetectTarget(p models.Point, droppables []models.Droppable) (string, bool) {
	best := -1
	bestArea := math.Inf(1)
	for i, d := range droppables {
		if !contains(d.Rect, p) {
			continue
		}
		if area := d.Rect.Width * d.Rect.Height; area < bestArea {
			best, bestArea = i, area
		}
	}
	if best >= 0 {
		return droppables[best].ID, true
	}

	bestDist := math.Inf(1)
	for i, d := range droppables {
		cx, cy := center(d.Rect)
		if dist := math.Hypot(p.X-cx, p.Y-cy); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return "", false
	}
	return droppables[best].ID, true
}

func contains(r models.Rect, p models.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func center(r models.Rect) (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
