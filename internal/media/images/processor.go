// Package images decodes, resizes and re-encodes uploaded images before
// they are pushed to the CDN. Each upload kind carries the target
// dimensions the site layout expects.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Kind determines how an uploaded image is transformed.
type Kind string

// Upload kinds. Film and series posters share the 2:3 poster frame;
// thumbnails and banners have their own fixed layouts. Blog, editor and
// general images pass through with only a size cap so they keep their
// shape.
const (
	KindFilm      Kind = "film"
	KindSeries    Kind = "series"
	KindThumbnail Kind = "thumbnail"
	KindBanner    Kind = "banner"
	KindBlog      Kind = "blog"
	KindEditor    Kind = "editor"
	KindGeneral   Kind = "general"
)

// IsValid reports whether k is a known upload kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindFilm, KindSeries, KindThumbnail, KindBanner, KindBlog, KindEditor, KindGeneral:
		return true
	}
	return false
}

// dimensions returns the target width and height for a kind. Editor
// images have no fixed frame and return (0, 0).
func (k Kind) dimensions() (width, height int) {
	switch k {
	case KindFilm, KindSeries:
		return 500, 750
	case KindThumbnail:
		return 400, 300
	case KindBanner:
		return 1920, 1080
	default:
		return 0, 0
	}
}

// editorMaxWidth caps inline blog images. Anything wider is scaled down
// proportionally.
const editorMaxWidth = 1600

// jpegQuality for re-encoded output.
const jpegQuality = 85

// Processed is the result of transforming an upload.
type Processed struct {
	Data   []byte // JPEG bytes
	Width  int
	Height int
	Format string // Source format: "jpeg", "png", "gif", "webp"
}

// Process decodes an uploaded image, applies the transform for kind and
// re-encodes it as JPEG. Fixed-frame kinds are scaled to cover the
// frame and center-cropped; editor images only get a width cap.
func Process(data []byte, kind Kind) (*Processed, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown upload kind %q", kind)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	width, height := kind.dimensions()
	if width > 0 {
		img = cropFill(img, width, height)
	} else {
		img = capWidth(img, editorMaxWidth)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	bounds := img.Bounds()
	return &Processed{
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

// cropFill scales the image to cover the target frame while keeping its
// aspect ratio, then crops the overflow evenly from both sides.
func cropFill(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	// Scale factor that covers the frame in both dimensions.
	scaleX := float64(width) / float64(srcW)
	scaleY := float64(height) / float64(srcH)
	scale := scaleX
	if scaleY > scale {
		scale = scaleY
	}

	scaledW := int(float64(srcW)*scale + 0.5)
	scaledH := int(float64(srcH)*scale + 0.5)
	if scaledW < width {
		scaledW = width
	}
	if scaledH < height {
		scaledH = height
	}

	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)

	// Center crop.
	x0 := (scaledW - width) / 2
	y0 := (scaledH - height) / 2
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), scaled, image.Pt(x0, y0), draw.Src)

	return out
}

// capWidth scales the image down proportionally if it is wider than
// maxWidth. Smaller images are returned unchanged.
func capWidth(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	if srcW <= maxWidth {
		return img
	}

	dstW := maxWidth
	dstH := (srcH * maxWidth) / srcW
	if dstH < 1 {
		dstH = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(out, out.Bounds(), img, bounds, draw.Over, nil)

	return out
}
