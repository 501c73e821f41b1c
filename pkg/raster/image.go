package raster

// Pixel is a single RGB sample, 8 bits per channel
type Pixel struct {
	R, G, B uint8
}

// Luminance returns the integer-truncated mean of the three channels
func (p Pixel) Luminance() uint8 {
	return uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
}

// Image is an RGB raster. Width is the outer dimension of the buffer:
// the sample at (i, j) lives at Pix[i*Height+j].
type Image struct {
	Width, Height int
	Pix           []Pixel
}

// New allocates a zeroed image of the given dimensions
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{Width: width, Height: height}
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}, nil
}

// Index returns the buffer offset of (i, j)
func (img *Image) Index(i, j int) int {
	return i*img.Height + j
}

// At returns the pixel at (i, j)
func (img *Image) At(i, j int) Pixel {
	return img.Pix[i*img.Height+j]
}

// Set writes the pixel at (i, j)
func (img *Image) Set(i, j int, p Pixel) {
	img.Pix[i*img.Height+j] = p
}

// Clone returns a deep copy of the image
func (img *Image) Clone() *Image {
	if img == nil {
		return nil
	}
	c := &Image{Width: img.Width, Height: img.Height}
	if img.Pix != nil {
		c.Pix = make([]Pixel, len(img.Pix))
		copy(c.Pix, img.Pix)
	}
	return c
}

// Free releases the pixel buffer. The dimensions are kept so a freed image
// still reports what it used to hold.
func (img *Image) Free() {
	if img == nil {
		return
	}
	// Setting to nil is enough for Go's garbage collector
	img.Pix = nil
}

// Freed reports whether Free has released the buffer
func (img *Image) Freed() bool {
	return img == nil || img.Pix == nil
}
