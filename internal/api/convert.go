package api

import (
	"studify/internal/materials"
	"studify/internal/planner"
	"studify/internal/subjects"
)

func subjectRecord(subject subjects.Subject, materialCount int) SubjectRecord {
	return SubjectRecord{
		ID:          subject.ID,
		Name:        subject.Name,
		Description: subject.Description,
		Color:       subject.Color,
		CreatedAt:   subject.CreatedAt.Format(dateTimeFormat),
		UpdatedAt:   subject.UpdatedAt.Format(dateTimeFormat),
		Materials:   materialCount,
	}
}

func materialRecord(file materials.File, subjectName string) MaterialRecord {
	if subjectName == "" {
		subjectName = planner.UnknownSubject
	}
	record := MaterialRecord{
		ID:           file.ID,
		FileName:     file.FileName,
		OriginalName: file.OriginalName,
		FileType:     string(file.FileType),
		FileSize:     file.FileSize,
		FilePath:     file.FilePath,
		SubjectID:    file.SubjectID,
		SubjectName:  subjectName,
		UploadedAt:   file.UploadedAt.Format(dateTimeFormat),
	}
	if file.Metadata != nil {
		record.Metadata = &MaterialMetadata{
			Pages:         file.Metadata.Pages,
			Duration:      file.Metadata.Duration,
			EstimatedTime: file.Metadata.EstimatedTime,
			Difficulty:    string(file.Metadata.Difficulty),
		}
	}
	return record
}

// subjectNames indexes subject display names by id.
func subjectNames(catalog []subjects.Subject) map[string]string {
	names := make(map[string]string, len(catalog))
	for _, subject := range catalog {
		names[subject.ID] = subject.Name
	}
	return names
}
