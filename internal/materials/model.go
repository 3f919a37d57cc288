package materials

import "time"

// CollectionKey is the storage key for the uploaded material catalog.
const CollectionKey = "studify_uploaded_files"

// FileType classifies a material by its filename extension.
type FileType string

const (
	TypePPT   FileType = "ppt"
	TypePDF   FileType = "pdf"
	TypeDoc   FileType = "doc"
	TypeVideo FileType = "video"
)

// Difficulty buckets a material by expected study effort.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// File is one uploaded study material record.
type File struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileType     FileType  `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	FilePath     string    `json:"filePath"`
	SubjectID    string    `json:"subjectId"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Metadata     *Metadata `json:"metadata,omitempty"`
}

// Metadata carries the study estimates derived at upload time. Pages and
// Duration are populated per file type; EstimatedTime is always set.
type Metadata struct {
	Pages         int        `json:"pages,omitempty"`
	Duration      string     `json:"duration,omitempty"`
	EstimatedTime string     `json:"estimatedTime,omitempty"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
}

// Source describes an incoming upload before validation. Only the name and
// size participate in the pipeline; content stays wherever the caller has it.
type Source struct {
	Name string
	Size int64
}

// ProgressStatus is the lifecycle phase reported alongside a percentage.
type ProgressStatus string

const (
	StatusUploading  ProgressStatus = "uploading"
	StatusProcessing ProgressStatus = "processing"
	StatusComplete   ProgressStatus = "complete"
	StatusError      ProgressStatus = "error"
)

// ProgressEvent is one observation of an in-flight upload.
type ProgressEvent struct {
	FileID   string         `json:"fileId"`
	FileName string         `json:"fileName"`
	Progress float64        `json:"progress"`
	Status   ProgressStatus `json:"status"`
	Error    string         `json:"error,omitempty"`
}
