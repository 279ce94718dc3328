package common

const (
	ScreenWidth  = 1000
	ScreenHeight = 500
	ScreenTitle  = "Digging Game"

	TargetTPS = 60
)

const (
	TileScaling      = 1.0
	CharacterScaling = TileScaling / 1.6
	LaserScaling     = 0.8
	SpritePixelSize  = 128
)

// Movement is expressed per update tick, not per second.
const (
	PlayerMovementSpeed = 7.0
	Gravity             = 1.5
	BulletSpeed         = 10.0
	BulletLifeFrames    = 120
)

// Minimum distance kept between the player and each edge of the viewport.
const (
	LeftViewportMargin   = 200.0
	RightViewportMargin  = 200.0
	BottomViewportMargin = 150.0
	TopViewportMargin    = 100.0
)

const (
	PlayerStartX = SpritePixelSize * TileScaling * 4.5
	PlayerStartY = SpritePixelSize * TileScaling * 50
)

const WalkFrames = 8

// SoundVoices is the default number of overlapping plays per sound.
const SoundVoices = 4

// Layer names read from the level map.
const (
	LayerPlatforms = "Platforms"
	LayerGold      = "Gold"
	LayerCoal      = "Coal"
)

const PointsProperty = "Points"
