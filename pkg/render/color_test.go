package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillWidth(t *testing.T) {
	assert.Equal(t, 400, FillWidth(400, 1000, 1000))
	assert.Equal(t, 200, FillWidth(400, 500, 1000))
	assert.Equal(t, 0, FillWidth(400, 0, 1000))
	assert.Equal(t, 0, FillWidth(400, -5, 1000))
	assert.Equal(t, 400, FillWidth(400, 2000, 1000))
	assert.Equal(t, 0, FillWidth(400, 10, 0))
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 255}, DarkenColor(color.RGBA{R: 200, G: 100, B: 1, A: 255}))
}
