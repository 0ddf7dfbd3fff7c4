package gui

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

// screen shows finished frames in the window.
type screen interface {
	present(frame *image.RGBA)
	release()
}

// textureScreen streams frames through a single raylib texture. Calls are
// only valid between rl.BeginDrawing and rl.EndDrawing.
type textureScreen struct {
	texture rl.Texture2D
	loaded  bool
	pixels  []color.RGBA
}

func (s *textureScreen) present(frame *image.RGBA) {
	if !s.loaded {
		img := rl.NewImageFromImage(frame)
		s.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		s.loaded = true
	} else {
		s.pixels = straightAlpha(frame, s.pixels)
		rl.UpdateTexture(s.texture, s.pixels)
	}
	rl.DrawTexture(s.texture, 0, 0, rl.White)
}

func (s *textureScreen) release() {
	if s.loaded {
		rl.UnloadTexture(s.texture)
		s.loaded = false
	}
}

// Context rasterizes like any surface.Image and presents the result as a
// window texture.
type Context struct {
	*surface.Image
	screen screen
}

func NewContext(width, height int) *Context {
	return newContext(&textureScreen{}, width, height)
}

func newContext(s screen, width, height int) *Context {
	return &Context{Image: surface.NewImage(width, height, 1), screen: s}
}

// Factory builds window contexts for a surface.Document.
func Factory(width, height int) (surface.Context, error) {
	return NewContext(width, height), nil
}

// Present draws the current frame into the window.
func (c *Context) Present() { c.screen.present(c.RGBA()) }

// Release frees the window texture. The window must still be open.
func (c *Context) Release() { c.screen.release() }

// straightAlpha converts premultiplied image pixels into the straight
// alpha layout raylib textures use, reusing buf when it is large enough.
func straightAlpha(img *image.RGBA, buf []color.RGBA) []color.RGBA {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if cap(buf) < n {
		buf = make([]color.RGBA, n)
	}
	buf = buf[:n]

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			switch c.A {
			case 0:
				c = color.RGBA{}
			case 255:
			default:
				c.R = uint8(uint32(c.R) * 255 / uint32(c.A))
				c.G = uint8(uint32(c.G) * 255 / uint32(c.A))
				c.B = uint8(uint32(c.B) * 255 / uint32(c.A))
			}
			buf[i] = c
			i++
		}
	}
	return buf
}
