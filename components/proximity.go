package components

// EatingRangeFactor scales the centre distance before it is compared with the
// combined radii, so entities count as in range slightly before they touch.
const EatingRangeFactor = 0.9

// combinedRadius returns rA + rB as a float.
func combinedRadius(a, b *Entity) float64 {
	return float64(a.Radius + b.Radius)
}

// IsCollidingWith reports whether the two circles touch or overlap.
// Touching (distance equal to the radius sum) counts as colliding.
func (e *Entity) IsCollidingWith(other *Entity) bool {
	return e.Position.Dist(other.Position) <= combinedRadius(e, other)
}

// InEatingRange reports whether other is close enough to be eaten.
// Any colliding pair is also in eating range.
func (e *Entity) InEatingRange(other *Entity) bool {
	return EatingRangeFactor*e.Position.Dist(other.Position) <= combinedRadius(e, other)
}

// EatingReach returns the largest centre distance at which an entity of
// radius r can still reach a peer of radius peerR.
func EatingReach(r, peerR int) float64 {
	return float64(r+peerR) / EatingRangeFactor
}
