package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// SessionTag marks the singleton entity holding score, viewport and sounds.
type SessionTag struct{}

var SessionTagComponent = NewComponent[SessionTag]()
