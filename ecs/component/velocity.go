package component

// Velocity is the per-tick displacement (change_x, change_y).
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
