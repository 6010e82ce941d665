package render

import (
	"encoding/base64"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophframe/internal/testutil"
)

func TestDecode(t *testing.T) {
	png := testutil.SolidPNG(4, 3, color.NRGBA{R: 200, A: 255})

	t.Run("raw png", func(t *testing.T) {
		img, err := Decode(png)
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())
	})

	t.Run("base64 data url", func(t *testing.T) {
		url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
		img, err := Decode([]byte(url))
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Decode([]byte("definitely not an image"))
		assert.ErrorContains(t, err, "failed to decode image")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("malformed data url", func(t *testing.T) {
		_, err := Decode([]byte("data:image/png;base64"))
		assert.ErrorContains(t, err, "malformed data url")

		_, err = Decode([]byte("data:image/png;base64,@@@"))
		assert.ErrorContains(t, err, "malformed data url")
	})
}

func TestEncodePNGAndDataURL(t *testing.T) {
	canvas := NewCanvas(8, 8, color.NRGBA{G: 255, A: 255})

	png, err := EncodePNG(canvas.Image())
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	url := DataURL(png)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	img, err := Decode([]byte(url))
	require.NoError(t, err)
	r, g, b, a := img.At(3, 3).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0, 0xffff}, []uint32{r, g, b, a})
}
