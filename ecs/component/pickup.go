package component

type PickupKind string

const (
	PickupGold PickupKind = "gold"
	PickupCoal PickupKind = "coal"
)

// Pickup is a collectible worth Points. HasPoints is false when the map
// entry carried no Points property.
type Pickup struct {
	Kind      PickupKind
	Points    int
	HasPoints bool
}

var PickupComponent = NewComponent[Pickup]()
