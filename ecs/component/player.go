package component

type Player struct {
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
