package telemetry

import "github.com/pthm-cable/pond/components"

// LifetimeStats tracks per-entity statistics over its lifetime.
type LifetimeStats struct {
	Kind      components.Kind
	BirthTick int32
	ParentID  uint32 // zero for founders

	Meals    int
	Children int
}

// LifetimeTracker manages per-entity lifetime statistics keyed by entity ID.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{stats: make(map[uint32]*LifetimeStats)}
}

// Register starts tracking a newly spawned entity.
func (lt *LifetimeTracker) Register(id uint32, kind components.Kind, birthTick int32, parentID uint32) {
	lt.stats[id] = &LifetimeStats{Kind: kind, BirthTick: birthTick, ParentID: parentID}
}

// Get returns the lifetime stats for an entity, or nil if not found.
func (lt *LifetimeTracker) Get(id uint32) *LifetimeStats {
	return lt.stats[id]
}

// Remove stops tracking an entity and returns its final stats.
func (lt *LifetimeTracker) Remove(id uint32) *LifetimeStats {
	s := lt.stats[id]
	delete(lt.stats, id)
	return s
}

// RecordMeal increments an eater's meal count.
func (lt *LifetimeTracker) RecordMeal(id uint32) {
	if s := lt.stats[id]; s != nil {
		s.Meals++
	}
}

// RecordChild increments a parent's children count.
func (lt *LifetimeTracker) RecordChild(parentID uint32) {
	if s := lt.stats[parentID]; s != nil {
		s.Children++
	}
}

// Age returns how long the entity has lived, in seconds.
func (s *LifetimeStats) Age(currentTick int32, dt float64) float64 {
	return float64(currentTick-s.BirthTick) * dt
}

// Count returns the number of tracked entities.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
