package surface

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var blue = color.RGBA{0, 0, 255, 255}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// countPixels reports how many device pixels of img satisfy keep.
func countPixels(img *Image, keep func(color.RGBA) bool) int {
	n := 0
	b := img.RGBA().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if keep(img.RGBA().RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func painted(c color.RGBA) bool { return c.A > 0 }

func TestImageFillCircle(t *testing.T) {
	img := NewImage(100, 100, 1)
	img.SetClearColor(color.White)
	img.Clear()

	img.SetFillStyle(blue)
	img.BeginPath()
	img.Arc(50, 50, 20, 0, 2*math.Pi, true)
	img.ClosePath()
	img.Fill()

	require.True(t, sameColor(img.RGBA().At(50, 50), blue))
	require.True(t, sameColor(img.RGBA().At(50, 31), blue))
	require.True(t, sameColor(img.RGBA().At(0, 0), color.White))
	require.True(t, sameColor(img.RGBA().At(50, 75), color.White))

	// Edge pixels are antialiased; count those at least half covered.
	area := float64(countPixels(img, func(c color.RGBA) bool { return c.R < 128 }))
	require.InEpsilon(t, math.Pi*20*20, area, 0.05)
}

func TestImageScale(t *testing.T) {
	img := NewImage(50, 40, 2)
	w, h := img.RGBA().Bounds().Dx(), img.RGBA().Bounds().Dy()
	require.Equal(t, 100, w)
	require.Equal(t, 80, h)
	require.Equal(t, 50, img.Width())
	require.Equal(t, 40, img.Height())

	img.SetFillStyle(blue)
	img.BeginPath()
	img.Arc(25, 20, 5, 0, 2*math.Pi, false)
	img.Fill()
	require.True(t, sameColor(img.RGBA().At(50, 40), blue))
	require.False(t, painted(img.RGBA().RGBAAt(50, 25)))
}

func TestImageStrokeRectangle(t *testing.T) {
	img := NewImage(20, 20, 1)
	img.SetStrokeStyle(color.Black)
	img.BeginPath()
	img.MoveTo(2, 2)
	img.LineTo(10, 2)
	img.LineTo(10, 10)
	img.LineTo(2, 10)
	img.ClosePath()
	img.Stroke()

	require.True(t, painted(img.RGBA().RGBAAt(6, 2)))
	require.True(t, painted(img.RGBA().RGBAAt(2, 6)))
	require.False(t, painted(img.RGBA().RGBAAt(6, 6)))
}

func TestFillKeepsPathForStroke(t *testing.T) {
	img := NewImage(40, 40, 1)
	img.SetFillStyle(blue)
	img.SetStrokeStyle(color.Black)
	img.BeginPath()
	img.Arc(20, 20, 10, 0, 2*math.Pi, false)
	img.Fill()
	img.Stroke()

	require.True(t, sameColor(img.RGBA().At(20, 20), blue))
	edge := img.RGBA().RGBAAt(30, 20)
	require.True(t, painted(edge))
	require.Less(t, edge.B, uint8(255))

	img.BeginPath()
	img.SetFillStyle(color.White)
	img.Fill()
	require.True(t, sameColor(img.RGBA().At(20, 20), blue))
}

func TestFillIgnoresEmptyPath(t *testing.T) {
	img := NewImage(10, 10, 1)
	img.BeginPath()
	img.Fill()
	img.Stroke()
	require.Equal(t, 0, countPixels(img, painted))
}

func TestArcIgnoresNonPositiveRadius(t *testing.T) {
	img := NewImage(10, 10, 1)
	img.BeginPath()
	img.Arc(5, 5, 0, 0, 2*math.Pi, false)
	img.Arc(5, 5, -3, 0, 2*math.Pi, false)
	img.Fill()
	require.Equal(t, 0, countPixels(img, painted))
}

func TestSnapshotIsIndependent(t *testing.T) {
	img := NewImage(4, 4, 1)
	snap := img.Snapshot()
	img.SetClearColor(color.White)
	img.Clear()
	require.False(t, sameColor(snap.At(0, 0), color.White))
}

func TestArcSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		want       float64
	}{
		{"clockwise half", 0, math.Pi, false, math.Pi},
		{"counterclockwise half", 0, math.Pi, true, -math.Pi},
		{"clockwise wraps", math.Pi, 0.5 * math.Pi, false, 1.5 * math.Pi},
		{"full circle ccw", 0, 2 * math.Pi, true, -2 * math.Pi},
		{"full circle cw", 0, 3 * math.Pi, false, 2 * math.Pi},
		{"empty", 1, 1, false, 0},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, ArcSweep(tt.start, tt.end, tt.ccw), 1e-9, tt.name)
	}
}

func TestBrailleFill(t *testing.T) {
	b := NewBraille(500, 500, 40, 20)
	b.SetClearColor(color.White)
	b.Clear()

	b.SetFillStyle(blue)
	b.BeginPath()
	b.Arc(250, 250, 50, 0, 2*math.Pi, true)
	b.ClosePath()
	b.Fill()

	g := b.Grid()
	w, h := g.Size()
	require.Equal(t, 80, w)
	require.Equal(t, 80, h)
	require.True(t, g.IsSet(40, 40))
	require.False(t, g.IsSet(0, 0))
	require.False(t, g.IsSet(40, 28))

	out := b.String()
	require.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 20)

	b.Clear()
	require.False(t, g.IsSet(40, 40))
}

func TestBrailleGridDots(t *testing.T) {
	g := NewBrailleGrid(2, 2)
	g.Set(1, 1)
	require.True(t, g.IsSet(1, 1))
	require.Equal(t, rune(brailleBlank|0x10), g.Cells[0][0])
	g.Unset(1, 1)
	require.False(t, g.IsSet(1, 1))
	require.Equal(t, rune(brailleBlank), g.Cells[0][0])

	g.Set(-1, 0)
	g.Set(100, 100)
	require.False(t, g.IsSet(100, 100))

	g.Set(3, 7)
	g.Clear()
	require.False(t, g.IsSet(3, 7))
}

func TestDocumentLookup(t *testing.T) {
	doc := NewDocument(ImageFactory(1), false, nil)

	_, err := doc.Lookup("canvas")
	require.ErrorIs(t, err, ErrSurfaceNotFound)

	_, err = doc.Canvas("canvas")
	require.ErrorIs(t, err, ErrSurfaceNotFound)

	el, err := doc.Add("canvas", 500, 500)
	require.NoError(t, err)

	got, err := doc.Canvas("canvas")
	require.NoError(t, err)
	require.Same(t, el, got)
	require.False(t, got.Substitute())

	_, err = doc.Add("bad", 0, 10)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestDocumentFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	doc := NewDocument(ImageFactory(1), true, logger)

	el, err := doc.Canvas("canvas")
	require.NoError(t, err)
	require.True(t, el.Substitute())
	require.Equal(t, DefaultWidth, el.Width())
	require.Equal(t, DefaultHeight, el.Height())
	require.Contains(t, buf.String(), "surface not found")
	require.Contains(t, buf.String(), "id=canvas")

	again, err := doc.Lookup("canvas")
	require.NoError(t, err)
	require.Same(t, el, again)
}

func TestElementContext(t *testing.T) {
	doc := NewDocument(ImageFactory(1), false, nil)
	el, err := doc.Add("canvas", 40, 30)
	require.NoError(t, err)

	ctx, err := el.Context2D()
	require.NoError(t, err)
	require.Equal(t, 40, ctx.Width())

	same, err := el.Context2D()
	require.NoError(t, err)
	require.Same(t, ctx, same)

	require.ErrorIs(t, el.SetSize(-1, 5), ErrInvalidSize)
	require.NoError(t, el.SetSize(500, 400))
	resized, err := el.Context2D()
	require.NoError(t, err)
	require.Equal(t, 500, resized.Width())
	require.Equal(t, 400, resized.Height())
}

func TestElementContextUnavailable(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument(nil, false, slog.New(slog.NewTextHandler(&buf, nil)))
	el, err := doc.Add("canvas", 10, 10)
	require.NoError(t, err)

	_, err = el.Context2D()
	require.ErrorIs(t, err, ErrContextUnavailable)
	require.Contains(t, buf.String(), "unable to get 2d context")

	failing := NewDocument(func(int, int) (Context, error) {
		return nil, errors.New("no gpu")
	}, false, slog.New(slog.NewTextHandler(&buf, nil)))
	el, err = failing.Add("canvas", 10, 10)
	require.NoError(t, err)
	_, err = el.Context2D()
	require.ErrorIs(t, err, ErrContextUnavailable)
	require.Contains(t, err.Error(), "no gpu")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"blue", color.RGBA{0, 0, 255, 255}},
		{" White ", color.RGBA{255, 255, 255, 255}},
		{"#ff8000", color.RGBA{255, 128, 0, 255}},
		{"#0f0", color.RGBA{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "chartreuse-ish", "#12", "#gggggg"} {
		_, err := ParseColor(bad)
		require.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}
