package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerPlatforms = iota
	LayerGold
	LayerCoal
	LayerPlayer
	LayerBullets
)

var RenderLayerComponent = NewComponent[RenderLayer]()
