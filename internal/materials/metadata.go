package materials

import "fmt"

const (
	// Paged documents are estimated at roughly 50KB per page.
	bytesPerPage = 51200
	// Reading pace estimate for paged documents.
	minutesPerPage = 2
	// Videos are estimated at roughly one minute of footage per MiB.
	bytesPerVideoMinute = 1 << 20

	easyThresholdBytes = 5 << 20
	hardThresholdBytes = 20 << 20
)

// EstimateMinutes reports the study-minutes estimate for a material of the
// given type and size. Videos map size to footage minutes; paged types map
// size to pages and pages to reading minutes.
func EstimateMinutes(fileType FileType, size int64) int {
	if fileType == TypeVideo {
		return int(ceilDiv(size, bytesPerVideoMinute))
	}
	return int(ceilDiv(size, bytesPerPage)) * minutesPerPage
}

// EstimateMetadata derives study estimates from a material's size. Paged
// types get a page count and reading time; videos get a duration. Difficulty
// is easy below 5MiB, hard above 20MiB, and medium in between.
func EstimateMetadata(fileType FileType, size int64) *Metadata {
	meta := &Metadata{Difficulty: DifficultyMedium}

	minutes := EstimateMinutes(fileType, size)
	switch fileType {
	case TypeVideo:
		meta.Duration = FormatMinutes(minutes)
		meta.EstimatedTime = meta.Duration
	default:
		meta.Pages = int(ceilDiv(size, bytesPerPage))
		meta.EstimatedTime = FormatMinutes(minutes)
	}

	if size < easyThresholdBytes {
		meta.Difficulty = DifficultyEasy
	} else if size > hardThresholdBytes {
		meta.Difficulty = DifficultyHard
	}
	return meta
}

// FormatMinutes renders a duration as "{h}h {m}m", dropping whichever unit
// is zero. Zero total renders as "0m".
func FormatMinutes(total int) string {
	hours := total / 60
	minutes := total % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

func ceilDiv(n, d int64) int64 {
	return (n + d - 1) / d
}
