package component

// Platform marks a destructible terrain block sitting in grid cell (Col, Row),
// counted from the bottom-left of the map.
type Platform struct {
	Col int
	Row int
}

var PlatformComponent = NewComponent[Platform]()
