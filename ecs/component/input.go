package component

// Input holds the two independent movement flags toggled by key events.
type Input struct {
	LeftPressed  bool
	RightPressed bool
}

// MoveX is +1 when only right is held, -1 when only left is held, else 0.
func (in Input) MoveX() float64 {
	switch {
	case in.RightPressed && !in.LeftPressed:
		return 1
	case in.LeftPressed && !in.RightPressed:
		return -1
	default:
		return 0
	}
}

var InputComponent = NewComponent[Input]()
