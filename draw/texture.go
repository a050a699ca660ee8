package draw

import (
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/go-gl/gl/v2.1/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Texture is an image uploaded to the GPU.
type Texture struct {
	ID            uint32
	Width, Height int
}

// ImageDecodeError is returned by LoadTexture if the image file is missing
// or cannot be decoded.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return `image "` + e.Path + `" could not be loaded: ` + e.Err.Error()
}

func (e *ImageDecodeError) Unwrap() error {
	return e.Err
}

// LoadTexture decodes the image at path into RGBA8 pixels and uploads them as
// a 2D texture with nearest neighbor filtering. The texture stays on the GPU
// as long as the OpenGL context exists.
func LoadTexture(path string) (Texture, error) {
	pixels, err := loadPixels(path)
	if err != nil {
		return Texture{}, &ImageDecodeError{Path: path, Err: err}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(pixels.Rect.Dx()),
		int32(pixels.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels.Pix),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	return Texture{
		ID:     tex,
		Width:  pixels.Rect.Dx(),
		Height: pixels.Rect.Dy(),
	}, nil
}

func loadPixels(path string) (*image.NRGBA, error) {
	f, err := DefaultOpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodePixels(f)
}

// decodePixels returns tightly packed RGBA8 pixels with straight alpha and
// the origin at 0,0, the layout glTexImage2D expects.
func decodePixels(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok &&
		bounds.Min == (image.Point{}) &&
		nrgba.Stride == bounds.Dx()*4 {
		return nrgba, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return nrgba, nil
}
