package component

type Bullet struct {
	Speed float64
	// Angle of travel in degrees.
	Angle float64
}

var BulletComponent = NewComponent[Bullet]()
