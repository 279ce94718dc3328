package component

// TTL is a simple frame-based time-to-live component. Entities carrying it are
// destroyed once Frames counts down to zero.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
