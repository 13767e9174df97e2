package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTestImage encodes a solid-color test image of the given size.
func makeTestImage(t *testing.T, width, height int, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(buf *bytes.Buffer, img image.Image) error {
	return jpeg.Encode(buf, img, nil)
}

func encodePNG(buf *bytes.Buffer, img image.Image) error {
	return png.Encode(buf, img)
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format, "output should always be JPEG")
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestProcess_PosterFrame(t *testing.T) {
	// A landscape source still comes out as a 500x750 poster.
	data := makeTestImage(t, 1200, 800, encodeJPEG)

	out, err := Process(data, KindFilm)
	require.NoError(t, err)

	w, h := decodeSize(t, out.Data)
	assert.Equal(t, 500, w)
	assert.Equal(t, 750, h)
	assert.Equal(t, 500, out.Width)
	assert.Equal(t, 750, out.Height)
	assert.Equal(t, "jpeg", out.Format)
}

func TestProcess_SeriesSharesPosterFrame(t *testing.T) {
	data := makeTestImage(t, 600, 600, encodePNG)

	out, err := Process(data, KindSeries)
	require.NoError(t, err)

	w, h := decodeSize(t, out.Data)
	assert.Equal(t, 500, w)
	assert.Equal(t, 750, h)
	assert.Equal(t, "png", out.Format)
}

func TestProcess_Thumbnail(t *testing.T) {
	data := makeTestImage(t, 1000, 1000, encodeJPEG)

	out, err := Process(data, KindThumbnail)
	require.NoError(t, err)

	w, h := decodeSize(t, out.Data)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestProcess_Banner(t *testing.T) {
	data := makeTestImage(t, 2400, 1200, encodeJPEG)

	out, err := Process(data, KindBanner)
	require.NoError(t, err)

	w, h := decodeSize(t, out.Data)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}

func TestProcess_EditorKeepsAspect(t *testing.T) {
	// Wider than the cap: scaled down proportionally.
	data := makeTestImage(t, 3200, 1600, encodeJPEG)

	out, err := Process(data, KindEditor)
	require.NoError(t, err)

	w, h := decodeSize(t, out.Data)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 800, h)

	// Narrower than the cap: untouched dimensions.
	data = makeTestImage(t, 640, 480, encodeJPEG)

	out, err = Process(data, KindEditor)
	require.NoError(t, err)

	w, h = decodeSize(t, out.Data)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestProcess_BlogKeepsAspect(t *testing.T) {
	data := makeTestImage(t, 800, 600, encodeJPEG)

	out, err := Process(data, KindBlog)
	require.NoError(t, err)

	w, h := decodeSize(t, out.Data)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestProcess_UpscalesSmallSource(t *testing.T) {
	// Smaller than the poster frame: scaled up to fill it.
	data := makeTestImage(t, 100, 100, encodeJPEG)

	out, err := Process(data, KindFilm)
	require.NoError(t, err)

	w, h := decodeSize(t, out.Data)
	assert.Equal(t, 500, w)
	assert.Equal(t, 750, h)
}

func TestProcess_RejectsUnknownKind(t *testing.T) {
	data := makeTestImage(t, 100, 100, encodeJPEG)

	_, err := Process(data, Kind("profile"))
	require.Error(t, err)
}

func TestProcess_RejectsGarbage(t *testing.T) {
	_, err := Process([]byte("definitely not an image"), KindFilm)
	require.Error(t, err)
}

func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindFilm.IsValid())
	assert.True(t, KindBlog.IsValid())
	assert.True(t, KindEditor.IsValid())
	assert.True(t, KindGeneral.IsValid())
	assert.False(t, Kind("").IsValid())
	assert.False(t, Kind("poster").IsValid())
}

func TestComputeBlurHash(t *testing.T) {
	data := makeTestImage(t, 500, 750, encodeJPEG)

	hash, err := ComputeBlurHash(data)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	// 4x3 components produce a compact placeholder string.
	assert.Less(t, len(hash), 40)
}

func TestComputeBlurHash_InvalidInput(t *testing.T) {
	_, err := ComputeBlurHash([]byte("nope"))
	require.Error(t, err)
}
