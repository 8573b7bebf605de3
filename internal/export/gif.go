package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"
)

// DefaultDotSize is the edge length in image pixels of one sub-pixel.
const DefaultDotSize = 4

var palette = color.Palette{
	color.RGBA{0x0a, 0x0a, 0x0a, 0xff},
	color.RGBA{0x00, 0xff, 0xff, 0xff},
}

// FrameImage rasterises b with every lit sub-pixel drawn as a dot x dot
// square.
func FrameImage(b Bitmap, dot int) *image.Paletted {
	if dot < 1 {
		dot = 1
	}
	pw, ph := b.PixelSize()
	img := image.NewPaletted(image.Rect(0, 0, pw*dot, ph*dot), palette)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !b.IsSet(x, y) {
				continue
			}
			for py := 0; py < dot; py++ {
				for px := 0; px < dot; px++ {
					img.SetColorIndex(x*dot+px, y*dot+py, 1)
				}
			}
		}
	}
	return img
}

// GIFDelay converts a frame interval to GIF delay units of 10ms, at least 1.
func GIFDelay(d time.Duration) int {
	return max(1, int(d/(10*time.Millisecond)))
}

// WriteGIF encodes frames as a looping animation, delay in 10ms units.
func WriteGIF[B Bitmap](w io.Writer, frames []B, dot, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, FrameImage(f, dot))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// SaveGIF writes frames to path.
func SaveGIF[B Bitmap](path string, frames []B, dot, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteGIF(f, frames, dot, delay); err != nil {
		return err
	}
	return f.Close()
}
