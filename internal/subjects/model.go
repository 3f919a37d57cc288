package subjects

import "time"

// CollectionKey is the storage key the subject catalog is persisted under.
const CollectionKey = "studify_subjects"

// Subject is one entry in the catalog.
type Subject struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Draft carries the caller-supplied fields for a new subject. Name emptiness
// is a caller concern; the registry accepts any string.
type Draft struct {
	Name        string
	Description string
	Color       string
}

// Patch is a partial update. Nil fields leave the current value unchanged.
type Patch struct {
	Name        *string
	Description *string
	Color       *string
}

// apply merges patch onto base with patch precedence. Timestamps are the
// caller's responsibility.
func apply(base Subject, patch Patch) Subject {
	if patch.Name != nil {
		base.Name = *patch.Name
	}
	if patch.Description != nil {
		base.Description = *patch.Description
	}
	if patch.Color != nil {
		base.Color = *patch.Color
	}
	return base
}

// Palette is the fixed set of subject colors offered by the UI. Any string is
// accepted by the registry; the palette only drives default picks.
var Palette = []string{
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#F59E0B", // amber
	"#10B981", // emerald
	"#3B82F6", // blue
	"#F97316", // orange
	"#06B6D4", // cyan
	"#8B5CF6", // purple
}
