package stego

import (
	"image"
	"image/color"
)

// Buffer is a dense row-major pixel buffer: width×height pixels, each a
// fixed-length tuple of 8-bit channel values (3 for RGB, 4 for RGBA). It is
// the codec's view of a decoded image; the codec never retains one across
// calls.
type Buffer struct {
	width, height int
	channels      int
	data          []uint8
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]uint8, width*height*channels),
	}
}

// FromImage flattens src into a 4-channel buffer. Channel values are
// non-premultiplied; the stored bytes survive an Image() round trip
// unchanged, which the codec depends on.
func FromImage(src image.Image) *Buffer {
	bounds := src.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy(), 4)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			b.data[idx] = c.R
			b.data[idx+1] = c.G
			b.data[idx+2] = c.B
			b.data[idx+3] = c.A
			idx += 4
		}
	}
	return b
}

// Image converts the buffer back to an image. A 3-channel buffer becomes
// fully opaque.
func (b *Buffer) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	idx := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := color.NRGBA{A: 0xff}
			c.R = b.data[idx]
			c.G = b.data[idx+1]
			c.B = b.data[idx+2]
			if b.channels == 4 {
				c.A = b.data[idx+3]
			}
			img.SetNRGBA(x, y, c)
			idx += b.channels
		}
	}
	return img
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := *b
	out.data = make([]uint8, len(b.data))
	copy(out.data, b.data)
	return &out
}

func (b *Buffer) Width() int    { return b.width }
func (b *Buffer) Height() int   { return b.height }
func (b *Buffer) Channels() int { return b.channels }

// Pixels is the total pixel count.
func (b *Buffer) Pixels() int { return b.width * b.height }

// At returns the value of one channel of one pixel, by row-major pixel
// index.
func (b *Buffer) At(pix, channel int) uint8 {
	return b.data[pix*b.channels+channel]
}

// Set overwrites one channel of one pixel.
func (b *Buffer) Set(pix, channel int, v uint8) {
	b.data[pix*b.channels+channel] = v
}
