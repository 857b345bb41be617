// Package avatar normalizes uploaded profile pictures: every accepted image
// is stored as a 250x250 PNG regardless of its original format or size.
package avatar

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxBytes is the largest upload accepted before decoding.
const MaxBytes = 1000000

// Size is the edge length of a stored avatar.
const Size = 250

var ErrNotAnImage = errors.New("Please upload an image file")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AllowedFilename reports whether the upload's filename carries an accepted
// image extension.
func AllowedFilename(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Normalize decodes an uploaded image, scales and crops it to exactly
// Size x Size (cover fit) and re-encodes it as PNG.
func Normalize(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	img = imaging.Fill(img, Size, Size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
