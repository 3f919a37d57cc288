package subjects

import "time"

// SetClock replaces the registry's clock for deterministic timestamps.
func (r *Registry) SetClock(now func() time.Time) { r.now = now }

// SetIDGenerator replaces the registry's id source.
func (r *Registry) SetIDGenerator(fn func() string) { r.newID = fn }
