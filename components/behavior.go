package components

// Behavior is the per-variant decision logic attached to an entity.
// Update runs once per tick for every live entity. The acting entity owns
// self for the duration of the call; peers are read only.
type Behavior interface {
	Update(self *Entity, delta float64, peers []*Entity)
	IsEdible() bool
}

// Controller is an external actor that steers an entity.
type Controller interface {
	Turn(e *Entity, angle float64)
	Move(e *Entity, distance float64)
}

// Kind identifies which variant drives an entity.
type Kind uint8

const (
	KindPlant Kind = iota
	KindWanderer
	KindGrazer
	KindPilot
	numKinds
)

// NumKinds is the number of entity kinds.
const NumKinds = int(numKinds)

var kindNames = [...]string{"plant", "wanderer", "grazer", "pilot"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Identity tags an entity with a stable ID and its kind.
type Identity struct {
	ID   uint32 `inspect:"label"`
	Kind Kind   `inspect:"label"`
}

// Mind attaches a behavior to an entity.
type Mind struct {
	Behavior Behavior
}
