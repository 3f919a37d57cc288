package main

import (
	"fmt"
	"strings"
	"time"

	"studify/internal/textutil"
)

func formatFileSize(size int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	switch {
	case size >= mib:
		return fmt.Sprintf("%.1f MiB", float64(size)/mib)
	case size >= kib:
		return fmt.Sprintf("%.1f KiB", float64(size)/kib)
	default:
		return fmt.Sprintf("%d B", size)
	}
}

func formatDisplayTime(value string) string {
	parsed, err := time.Parse("2006-01-02T15:04:05.000Z07:00", value)
	if err != nil {
		return value
	}
	return parsed.Local().Format("2006-01-02 15:04")
}

func dashIfEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func difficultyLabel(value string) string {
	return dashIfEmpty(textutil.Label(value))
}

func typeLabel(value string) string {
	return dashIfEmpty(textutil.UpperLabel(value))
}

func formatMinutesValue(minutes int) string {
	hours := minutes / 60
	rest := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
}
