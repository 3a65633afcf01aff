package render

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// AnimationOptions controls the animated GIF.
type AnimationOptions struct {
	Width  int
	Height int
	FPS    int
	// MaxFrames caps the number of frames; the trajectory is subsampled evenly
	// when it has more points. The last point is always the last frame.
	MaxFrames int
}

func (o AnimationOptions) withDefaults() AnimationOptions {
	if o.Width <= 0 {
		o.Width = 640
	}
	if o.Height <= 0 {
		o.Height = 480
	}
	if o.FPS <= 0 {
		o.FPS = 24
	}
	if o.MaxFrames <= 0 {
		o.MaxFrames = 240
	}
	return o
}

const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 32
	marginBottom = 40
)

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	axisColor       = color.RGBA{A: 255}
	pointColor      = color.RGBA{B: 255, A: 255}
)

// viewport maps trajectory coordinates into image pixels.
type viewport struct {
	minX, maxX, minY, maxY float64
	area                   image.Rectangle
}

func (v viewport) pixel(x, y float64) image.Point {
	fx := (x - v.minX) / (v.maxX - v.minX)
	fy := (y - v.minY) / (v.maxY - v.minY)
	return image.Point{
		X: v.area.Min.X + int(fx*float64(v.area.Dx())),
		Y: v.area.Max.Y - int(fy*float64(v.area.Dy())),
	}
}

// frameIndexes returns the indexes of the points that end each frame.
func frameIndexes(n, maxFrames int) []int {
	if n <= maxFrames {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if maxFrames == 1 {
		return []int{n - 1}
	}
	idx := make([]int, maxFrames)
	for k := range idx {
		idx[k] = k * (n - 1) / (maxFrames - 1)
	}
	return idx
}

// Animate writes an animated GIF in which every frame adds the samples
// launched since the previous one.
//
// The axes span the trajectory extents with a margin of 1 on each side.
func Animate(w io.Writer, flight Flight, points []ballistic.TrajectoryPoint, opts AnimationOptions) error {
	if len(points) == 0 {
		return ErrEmptyTrajectory
	}
	opts = opts.withDefaults()

	lo, hi := ballistic.Bounds(points)
	view := viewport{
		minX: lo.X - 1, maxX: hi.X + 1,
		minY: lo.Y - 1, maxY: hi.Y + 1,
		area: image.Rect(marginLeft, marginTop, opts.Width-marginRight, opts.Height-marginBottom),
	}

	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	drawAxes(canvas, view, flight)

	delay := 100 / opts.FPS
	if delay < 1 {
		delay = 1
	}

	frames := frameIndexes(len(points), opts.MaxFrames)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: -1,
	}

	next := 0
	for _, last := range frames {
		for ; next <= last; next++ {
			drawPoint(canvas, view.pixel(points[next].X(), points[next].Y()))
		}
		frame := image.NewPaletted(bounds, palette.Plan9)
		draw.Draw(frame, bounds, canvas, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// SaveAnimation writes the animated GIF to the file at path.
func SaveAnimation(path string, flight Flight, points []ballistic.TrajectoryPoint, opts AnimationOptions) error {
	return saveTo(path, func(w io.Writer) error {
		return Animate(w, flight, points, opts)
	})
}

func drawPoint(img *image.RGBA, p image.Point) {
	r := image.Rect(p.X-1, p.Y-1, p.X+2, p.Y+2).Intersect(img.Bounds())
	draw.Draw(img, r, image.NewUniform(pointColor), image.Point{}, draw.Src)
}

func drawAxes(img *image.RGBA, view viewport, flight Flight) {
	area := view.area
	for x := area.Min.X; x <= area.Max.X; x++ {
		img.Set(x, area.Max.Y, axisColor)
	}
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		img.Set(area.Min.X, y, axisColor)
	}

	face := basicfont.Face7x13
	drawText(img, face, title(flight), centered(face, title(flight), img.Bounds().Dx()), marginTop-12)
	drawText(img, face, "Distance", centered(face, "Distance", img.Bounds().Dx()), img.Bounds().Dy()-8)
	drawText(img, face, "Height", 4, marginTop-24+face.Height)

	drawText(img, face, fmt.Sprintf("%.3g", view.minX), area.Min.X, area.Max.Y+face.Height+2)
	maxLabel := fmt.Sprintf("%.3g", view.maxX)
	drawText(img, face, maxLabel, area.Max.X-font.MeasureString(face, maxLabel).Ceil(), area.Max.Y+face.Height+2)
	drawText(img, face, fmt.Sprintf("%.3g", view.maxY), 4, area.Min.Y+face.Ascent)
	drawText(img, face, fmt.Sprintf("%.3g", view.minY), 4, area.Max.Y)
}

func centered(face font.Face, s string, width int) int {
	x := (width - font.MeasureString(face, s).Ceil()) / 2
	if x < 0 {
		return 0
	}
	return x
}

func drawText(img draw.Image, face font.Face, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(axisColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
