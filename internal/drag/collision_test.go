package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meur/tierboard/internal/models"
)

func TestDetectTarget(t *testing.T) {
	droppables := []models.Droppable{
		{ID: "container:tier:1", Rect: models.Rect{X: 0, Y: 0, Width: 600, Height: 100}},
		{ID: "a", Rect: models.Rect{X: 10, Y: 10, Width: 80, Height: 80}},
		{ID: "container:tier:2", Rect: models.Rect{X: 0, Y: 100, Width: 600, Height: 100}},
		{ID: "b", Rect: models.Rect{X: 500, Y: 210, Width: 80, Height: 80}},
	}

	tests := []struct {
		name     string
		p        models.Point
		expected string
	}{
		{"item inside container", models.Point{X: 50, Y: 50}, "a"},
		{"container outside item", models.Point{X: 300, Y: 50}, "container:tier:1"},
		// b's center (540,250) is nearer than tier 2's center (300,150)
		{"empty container edge", models.Point{X: 590, Y: 195}, "container:tier:2"},
		{"nearest center fallback", models.Point{X: 700, Y: 260}, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectTarget(tt.p, droppables)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectTarget_Empty(t *testing.T) {
	_, ok := DetectTarget(models.Point{}, nil)
	assert.False(t, ok)
}
