package component

// Stats counts what happened during a session. It lives on the session entity
// next to Score.
type Stats struct {
	ShotsFired      int
	BlocksDestroyed int
	GoldCollected   int
	CoalCollected   int
}

var StatsComponent = NewComponent[Stats]()
