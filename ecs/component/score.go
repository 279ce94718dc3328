package component

type Score struct {
	Value int
}

var ScoreComponent = NewComponent[Score]()
