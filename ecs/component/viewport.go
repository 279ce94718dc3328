package component

// Viewport is the visible window onto the world, anchored at its bottom-left
// corner. Left and Bottom are whole numbers after any scroll.
type Viewport struct {
	Left   float64
	Bottom float64
	Width  float64
	Height float64

	MarginLeft   float64
	MarginRight  float64
	MarginBottom float64
	MarginTop    float64
}

var ViewportComponent = NewComponent[Viewport]()
