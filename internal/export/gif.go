package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/This-Is-Prince/learning-physics/internal/sim"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

var ErrNoFrames = errors.New("export: no frames captured")

// GIFRecorder captures every Nth frame drawn on an image surface. Add it
// to a scene as an observer.
type GIFRecorder struct {
	img    *surface.Image
	every  int
	delay  int
	seen   int
	frames []*image.Paletted
}

// NewGIFRecorder captures one frame in every and shows each for delay
// hundredths of a second.
func NewGIFRecorder(img *surface.Image, every, delay int) *GIFRecorder {
	if every < 1 {
		every = 1
	}
	if delay < 1 {
		delay = 2
	}
	return &GIFRecorder{img: img, every: every, delay: delay}
}

func (g *GIFRecorder) OnFrame(s sim.Sample) {
	g.seen++
	if (g.seen-1)%g.every != 0 {
		return
	}
	src := g.img.RGBA()
	frame := image.NewPaletted(src.Bounds(), palette.WebSafe)
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	g.frames = append(g.frames, frame)
}

func (g *GIFRecorder) Frames() int { return len(g.frames) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
	}
	return gif.EncodeAll(w, &anim)
}
