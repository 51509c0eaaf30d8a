package studio

import (
	"fmt"

	"github.com/petal-labs/visionary/core"
)

// Download is a decoded image ready to be saved.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Download decodes the image with the given ID.
func (s *Session) Download(id string) (Download, error) {
	img, ok := s.Image(id)
	if !ok {
		return Download{}, fmt.Errorf("%w: %s", ErrImageNotFound, id)
	}
	return NewDownload(img)
}

// NewDownload decodes img into a Download named
// visionary-<unix-ms>.<ext>.
func NewDownload(img core.GeneratedImage) (Download, error) {
	data, err := img.URL.Bytes()
	if err != nil {
		return Download{}, fmt.Errorf("decode image %s: %w", img.ID, err)
	}
	contentType := img.URL.MIMEType()
	if contentType == "" {
		contentType = core.DefaultImageMIMEType
	}
	return Download{
		Filename:    fmt.Sprintf("visionary-%d%s", img.Timestamp.UnixMilli(), img.URL.Extension()),
		ContentType: contentType,
		Data:        data,
	}, nil
}
