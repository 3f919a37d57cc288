package subjects

import "time"

// DefaultCatalog returns the subjects a fresh install starts with. The fixed
// ids keep repeated unseeded reads stable until the catalog is persisted.
func DefaultCatalog(now time.Time) []Subject {
	return []Subject{
		{
			ID:          "default_1",
			Name:        "Computer Science",
			Description: "Programming, algorithms, and data structures",
			Color:       Palette[0],
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "default_2",
			Name:        "Mathematics",
			Description: "Calculus, algebra, and statistics",
			Color:       Palette[1],
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "default_3",
			Name:        "Database Systems",
			Description: "SQL, NoSQL, and database design",
			Color:       Palette[2],
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "default_4",
			Name:        "Algorithms",
			Description: "Algorithm design and analysis",
			Color:       Palette[3],
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
