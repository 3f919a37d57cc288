package storage

// SetFreeSpaceFunc replaces the free-space probe so tests can exercise the
// quota refusal path.
func (s *Store) SetFreeSpaceFunc(fn func(path string) (uint64, error)) {
	s.freeSpace = fn
}
