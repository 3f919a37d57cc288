package planner

import (
	"studify/internal/materials"
	"studify/internal/subjects"
)

// Session block types.
const (
	TypeDeepFocus  = "Deep focus"
	TypeReview     = "Review"
	TypeQuickRecap = "Quick recap"
)

// UnknownSubject labels sessions whose material references a subject that no
// longer exists.
const UnknownSubject = "Unknown subject"

// Options tunes plan generation. Zero values fall back to defaults.
type Options struct {
	DailyMinutes       int
	FocusBlockMinutes  int
	ReviewBlockMinutes int
	RecapBlockMinutes  int
}

const (
	defaultDailyMinutes  = 240
	defaultFocusMinutes  = 90
	defaultReviewMinutes = 60
	defaultRecapMinutes  = 30
)

func (o Options) withDefaults() Options {
	if o.DailyMinutes <= 0 {
		o.DailyMinutes = defaultDailyMinutes
	}
	if o.FocusBlockMinutes <= 0 {
		o.FocusBlockMinutes = defaultFocusMinutes
	}
	if o.ReviewBlockMinutes <= 0 {
		o.ReviewBlockMinutes = defaultReviewMinutes
	}
	if o.RecapBlockMinutes <= 0 {
		o.RecapBlockMinutes = defaultRecapMinutes
	}
	return o
}

// Session is one scheduled study block.
type Session struct {
	SubjectID   string `json:"subjectId"`
	SubjectName string `json:"subjectName"`
	Color       string `json:"color,omitempty"`
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	Type        string `json:"type"`
	Duration    int    `json:"duration"`
}

// Day groups the sessions scheduled for one study day.
type Day struct {
	Index    int       `json:"index"`
	Sessions []Session `json:"sessions"`
	Minutes  int       `json:"minutes"`
}

// Plan is a generated study schedule.
type Plan struct {
	Days          []Day `json:"days"`
	TotalMinutes  int   `json:"totalMinutes"`
	TotalSessions int   `json:"totalSessions"`
}

// Build slices each material's estimated study minutes into typed session
// blocks and packs them into days. Materials are processed in catalog order
// and each one cycles through focus, review, focus, recap blocks until its
// minutes are spent, so the output is fully determined by the inputs. A day
// closes when the next session would push it past the daily budget; a single
// block larger than the budget still gets a day of its own.
func Build(catalog []subjects.Subject, files []materials.File, opts Options) Plan {
	opts = opts.withDefaults()
	names := subjectIndex(catalog)

	blocks := []struct {
		kind    string
		minutes int
	}{
		{TypeDeepFocus, opts.FocusBlockMinutes},
		{TypeReview, opts.ReviewBlockMinutes},
		{TypeDeepFocus, opts.FocusBlockMinutes},
		{TypeQuickRecap, opts.RecapBlockMinutes},
	}

	plan := Plan{}
	day := Day{Index: 1}

	for _, file := range files {
		remaining := materials.EstimateMinutes(file.FileType, file.FileSize)
		cycle := 0
		for remaining > 0 {
			block := blocks[cycle%len(blocks)]
			cycle++

			duration := block.minutes
			if duration > remaining {
				duration = remaining
			}
			remaining -= duration

			if day.Minutes > 0 && day.Minutes+duration > opts.DailyMinutes {
				plan.Days = append(plan.Days, day)
				day = Day{Index: day.Index + 1}
			}

			session := Session{
				SubjectID:   file.SubjectID,
				SubjectName: UnknownSubject,
				FileID:      file.ID,
				FileName:    file.FileName,
				Type:        block.kind,
				Duration:    duration,
			}
			if subject, ok := names[file.SubjectID]; ok {
				session.SubjectName = subject.Name
				session.Color = subject.Color
			}

			day.Sessions = append(day.Sessions, session)
			day.Minutes += duration
			plan.TotalMinutes += duration
			plan.TotalSessions++
		}
	}

	if len(day.Sessions) > 0 {
		plan.Days = append(plan.Days, day)
	}
	return plan
}

func subjectIndex(catalog []subjects.Subject) map[string]subjects.Subject {
	index := make(map[string]subjects.Subject, len(catalog))
	for _, subject := range catalog {
		index[subject.ID] = subject
	}
	return index
}
