package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned when there are no bytes to decode.
var ErrEmptyImage = errors.New("empty image payload")

const dataURLPrefix = "data:"

// Decode reads raw image bytes or a base64 data URL. PNG, JPEG, GIF, BMP,
// TIFF and WebP are recognized; EXIF orientation is applied.
func Decode(data []byte) (image.Image, error) {
	raw, err := unwrapDataURL(data)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyImage
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL wraps PNG bytes into a data URL.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// unwrapDataURL returns the payload of a data URL, or data unchanged when it
// is not one.
func unwrapDataURL(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, []byte(dataURLPrefix)) {
		return data, nil
	}
	comma := bytes.IndexByte(data, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data url: missing payload")
	}
	meta := string(data[len(dataURLPrefix):comma])
	payload := data[comma+1:]

	if !strings.HasSuffix(meta, ";base64") {
		return payload, nil
	}
	out := make([]byte, base64.StdEncoding.DecodedLen(len(payload)))
	n, err := base64.StdEncoding.Decode(out, bytes.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("malformed data url: %w", err)
	}
	return out[:n], nil
}
