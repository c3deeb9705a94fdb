package layout

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageFormat checks the header of an image and returns its format as the
// PDF writer names it: "PNG", "JPG" or "GIF". Other formats and damaged
// headers result in an error.
func ImageFormat(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("layout: image: %w", err)
	}
	switch format {
	case "png":
		return "PNG", nil
	case "jpeg":
		return "JPG", nil
	case "gif":
		return "GIF", nil
	}
	return "", fmt.Errorf("layout: unsupported image format %q", format)
}
