package core

import (
	"errors"
	"testing"
)

func TestNewDataURI(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     ImageRef
	}{
		{"png", "image/png", "data:image/png;base64,aW1n"},
		{"jpeg", "image/jpeg", "data:image/jpeg;base64,aW1n"},
		{"missing mime", "", "data:image/png;base64,aW1n"},
		{"non-image mime", "application/octet-stream", "data:image/png;base64,aW1n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDataURI(tt.mimeType, "aW1n"); got != tt.want {
				t.Errorf("NewDataURI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImageRefBytes(t *testing.T) {
	ref := NewDataURI("image/png", "aW1hZ2VkYXRh")

	data, err := ref.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if string(data) != "imagedata" {
		t.Errorf("Bytes() = %q, want imagedata", data)
	}
	if ref.MIMEType() != "image/png" {
		t.Errorf("MIMEType() = %q, want image/png", ref.MIMEType())
	}
	if !ref.IsDataURI() {
		t.Error("IsDataURI() = false, want true")
	}
}

func TestImageRefBytesInvalid(t *testing.T) {
	tests := []ImageRef{
		"https://example.com/a.png",
		"data:image/png,raw",
		"data:image/png;base64",
		"data:image/png;base64,!!!not-base64",
	}

	for _, ref := range tests {
		t.Run(string(ref), func(t *testing.T) {
			if _, err := ref.Bytes(); !errors.Is(err, ErrInvalidImageRef) {
				t.Errorf("Bytes() error = %v, want ErrInvalidImageRef", err)
			}
		})
	}
}

func TestImageRefExtension(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := NewDataURI(tt.mimeType, "eA==").Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := ImageRef("https://example.com/a").Extension(); got != ".png" {
		t.Errorf("remote Extension() = %q, want .png", got)
	}
}
