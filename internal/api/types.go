package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// SubjectRecord describes a subject in a transport-friendly format.
type SubjectRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	// Materials counts the uploads attached to this subject.
	Materials int `json:"materials"`
}

// MaterialMetadata mirrors the stored study estimates.
type MaterialMetadata struct {
	Pages         int    `json:"pages,omitempty"`
	Duration      string `json:"duration,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
}

// MaterialRecord describes an uploaded material in a transport-friendly
// format. SubjectName resolves to "Unknown subject" when the referenced
// subject no longer exists.
type MaterialRecord struct {
	ID           string            `json:"id"`
	FileName     string            `json:"fileName"`
	OriginalName string            `json:"originalName"`
	FileType     string            `json:"fileType"`
	FileSize     int64             `json:"fileSize"`
	FilePath     string            `json:"filePath"`
	SubjectID    string            `json:"subjectId"`
	SubjectName  string            `json:"subjectName"`
	UploadedAt   string            `json:"uploadedAt"`
	Metadata     *MaterialMetadata `json:"metadata,omitempty"`
}

// SubjectListResponse wraps the subject catalog for API responses.
type SubjectListResponse struct {
	Subjects []SubjectRecord `json:"subjects"`
}

// MaterialListResponse wraps a material listing for API responses.
type MaterialListResponse struct {
	Materials []MaterialRecord `json:"materials"`
}
