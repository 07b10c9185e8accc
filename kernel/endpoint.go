package kernel

// Unit identifies an execution unit taking part in a render pass.
type Unit uint8

const (
	// UnitMain is the unit that launches the pass and presents frames.
	UnitMain Unit = iota
	// UnitSecond is the unit started by Launch.
	UnitSecond
)

func (u Unit) String() string {
	switch u {
	case UnitMain:
		return "core0"
	case UnitSecond:
		return "core1"
	default:
		return "core?"
	}
}
