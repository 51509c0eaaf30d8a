package core

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DefaultImageMIMEType is used when the backend does not name an image type.
const DefaultImageMIMEType = "image/png"

// ErrInvalidImageRef is returned when an ImageRef cannot be decoded.
var ErrInvalidImageRef = errors.New("invalid image reference")

// ImageRef is a displayable reference to image bytes.
// Generators return data URIs of the form data:<mime>;base64,<payload>.
type ImageRef string

// NewDataURI wraps a base64 payload in a data URI.
// A mimeType that is not an image type falls back to DefaultImageMIMEType.
func NewDataURI(mimeType, b64 string) ImageRef {
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = DefaultImageMIMEType
	}
	return ImageRef("data:" + mimeType + ";base64," + b64)
}

// String returns the reference as a string.
func (r ImageRef) String() string {
	return string(r)
}

// IsDataURI reports whether the reference embeds its bytes.
func (r ImageRef) IsDataURI() bool {
	return strings.HasPrefix(string(r), "data:")
}

// MIMEType returns the media type of a data URI, or "" for remote references.
func (r ImageRef) MIMEType() string {
	mimeType, _, ok := r.split()
	if !ok {
		return ""
	}
	return mimeType
}

// Bytes decodes the payload of a data URI.
func (r ImageRef) Bytes() ([]byte, error) {
	_, payload, ok := r.split()
	if !ok {
		return nil, ErrInvalidImageRef
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidImageRef, err)
	}
	return data, nil
}

// Extension returns a file extension (with dot) matching the MIME type.
func (r ImageRef) Extension() string {
	switch r.MIMEType() {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// split parses data:<mime>;base64,<payload>.
func (r ImageRef) split() (mimeType, payload string, ok bool) {
	rest, found := strings.CutPrefix(string(r), "data:")
	if !found {
		return "", "", false
	}
	header, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mimeType, found = strings.CutSuffix(header, ";base64")
	if !found {
		return "", "", false
	}
	return mimeType, payload, true
}
