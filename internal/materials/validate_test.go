package materials_test

import (
	"errors"
	"strings"
	"testing"

	"studify/internal/materials"
	"studify/internal/registry"
)

func TestDetectTypeMapsExtensions(t *testing.T) {
	cases := []struct {
		name string
		want materials.FileType
		ok   bool
	}{
		{"lecture.ppt", materials.TypePPT, true},
		{"lecture.PPTX", materials.TypePPT, true},
		{"notes.pdf", materials.TypePDF, true},
		{"summary.doc", materials.TypeDoc, true},
		{"summary.docx", materials.TypeDoc, true},
		{"recording.mp4", materials.TypeVideo, true},
		{"recording.avi", materials.TypeVideo, true},
		{"recording.mkv", materials.TypeVideo, true},
		{"recording.mov", materials.TypeVideo, true},
		{"archive.zip", "", false},
		{"noextension", "", false},
	}
	for _, tc := range cases {
		got, ok := materials.DetectType(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("DetectType(%q) = %q, %v; want %q, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestValidateAcceptsExactlyAtLimit(t *testing.T) {
	src := materials.Source{Name: "notes.pdf", Size: materials.DefaultMaxFileSize}
	if err := materials.Validate(src, materials.DefaultMaxFileSize); err != nil {
		t.Fatalf("file at the limit must pass, got %v", err)
	}
}

func TestValidateRejectsOversizedFile(t *testing.T) {
	src := materials.Source{Name: "notes.pdf", Size: materials.DefaultMaxFileSize + 1}
	err := materials.Validate(src, materials.DefaultMaxFileSize)
	if !errors.Is(err, registry.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "100MB limit") {
		t.Fatalf("expected limit in message, got %q", err)
	}
	if !strings.Contains(err.Error(), "100.00MB") {
		t.Fatalf("expected reported size in message, got %q", err)
	}
}

func TestValidateRejectsUnsupportedExtension(t *testing.T) {
	err := materials.Validate(materials.Source{Name: "slides.key", Size: 1024}, materials.DefaultMaxFileSize)
	if !errors.Is(err, registry.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Fatalf("expected type rejection in message, got %q", err)
	}
}
