package materials

import (
	"fmt"
	"path/filepath"
	"strings"

	"studify/internal/registry"
)

var allowedExtensions = map[string]FileType{
	".ppt":  TypePPT,
	".pptx": TypePPT,
	".pdf":  TypePDF,
	".doc":  TypeDoc,
	".docx": TypeDoc,
	".mp4":  TypeVideo,
	".avi":  TypeVideo,
	".mkv":  TypeVideo,
	".mov":  TypeVideo,
}

// DetectType maps a filename extension to its material type. The second
// return is false for extensions outside the supported set.
func DetectType(name string) (FileType, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	fileType, ok := allowedExtensions[ext]
	return fileType, ok
}

// Validate rejects a source before any state changes. The size limit is
// inclusive: a file of exactly maxSize bytes passes.
func Validate(src Source, maxSize int64) error {
	if src.Size > maxSize {
		message := fmt.Sprintf("file size exceeds %dMB limit (%.2fMB)",
			maxSize/(1<<20), float64(src.Size)/1024/1024)
		return registry.Wrap(registry.ErrValidation, CollectionKey, "upload", message, nil)
	}
	if _, ok := DetectType(src.Name); !ok {
		return registry.Wrap(registry.ErrValidation, CollectionKey, "upload",
			"unsupported file type, allowed: ppt, pdf, doc, video", nil)
	}
	return nil
}
