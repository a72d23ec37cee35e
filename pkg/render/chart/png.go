package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	errs "github.com/matzehuels/degreerank/pkg/errors"
	"github.com/matzehuels/degreerank/pkg/fonts"
	"github.com/matzehuels/degreerank/pkg/histogram"
)

const (
	// DefaultWidth is the default image width in pixels.
	DefaultWidth = 800
	// DefaultHeight is the default image height in pixels.
	DefaultHeight = 600
	// DefaultBarFill matches a relative bar width of 0.97.
	DefaultBarFill = 0.97
)

// Plot area margins in pixels.
const (
	marginLeft   = 70.0
	marginRight  = 30.0
	marginTop    = 50.0
	marginBottom = 80.0
)

var (
	colorBackground = color.White
	colorAxis       = color.Black
	colorBar        = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorGrid       = color.RGBA{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff}
	colorNote       = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
)

// Option configures chart rendering.
type Option func(*renderer)

type renderer struct {
	width, height int
	clip          bool
	barFill       float64
}

// WithSize sets the image size in pixels.
func WithSize(w, h int) Option {
	return func(r *renderer) { r.width, r.height = w, h }
}

// WithClip enables or disables clipping the y-axis below a dominant bin.
func WithClip(on bool) Option {
	return func(r *renderer) { r.clip = on }
}

// WithBarFill sets the fraction of each bin's width covered by its bar.
func WithBarFill(f float64) Option {
	return func(r *renderer) { r.barFill = f }
}

// FileName returns the output file name for a chart title.
func FileName(title string) string {
	return title + " Histogram.png"
}

// RenderPNG draws h and returns the encoded PNG.
func RenderPNG(h *histogram.Histogram, opts ...Option) ([]byte, error) {
	r := renderer{
		width:   DefaultWidth,
		height:  DefaultHeight,
		clip:    true,
		barFill: DefaultBarFill,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= int(marginLeft+marginRight) || r.height <= int(marginTop+marginBottom) {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "chart size %dx%d too small", r.width, r.height)
	}
	if r.barFill <= 0 || r.barFill > 1 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "bar fill %v outside (0, 1]", r.barFill)
	}

	dc, err := r.draw(h)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeRender, err, "draw %s", h.Title)
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeRender, err, "encode %s", h.Title)
	}
	return buf.Bytes(), nil
}

// WritePNGFile renders h into dir/FileName(h.Title) and returns the path.
func WritePNGFile(h *histogram.Histogram, dir string, opts ...Option) (string, error) {
	if err := errs.ValidateTitle(h.Title); err != nil {
		return "", err
	}
	data, err := RenderPNG(h, opts...)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(h.Title))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errs.Wrap(errs.ErrCodeRender, err, "write %s", path)
	}
	return path, nil
}

// plot maps chart values to pixels.
type plot struct {
	x0, y0, x1, y1 float64 // plot area, y0 at the top
	lo, hi         float64 // x value range
	yMax           float64
}

func (p plot) x(v float64) float64 { return p.x0 + (v-p.lo)/(p.hi-p.lo)*(p.x1-p.x0) }
func (p plot) y(c float64) float64 { return p.y1 - c/p.yMax*(p.y1-p.y0) }

func (r renderer) draw(h *histogram.Histogram) (*gg.Context, error) {
	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}

	f := computeFrame(h, r.clip)
	p := plot{
		x0: marginLeft, y0: marginTop,
		x1: float64(r.width) - marginRight, y1: float64(r.height) - marginBottom,
		lo: h.Min(), hi: h.Max(),
		yMax: f.yMax,
	}

	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(colorBackground)
	dc.Clear()

	drawYAxis(dc, p, f, faces)
	drawBars(dc, p, h, f, r.barFill, faces)
	drawXAxis(dc, p, h, faces)
	drawLabels(dc, p, h, r, faces)
	if f.clipped {
		drawClipNote(dc, p, h, faces)
	}
	return dc, nil
}

type faceSet struct {
	title, label, tick, note font.Face
}

func loadFaces() (faceSet, error) {
	var fs faceSet
	var err error
	for _, s := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fs.title, fonts.SizeTitle},
		{&fs.label, fonts.SizeLabel},
		{&fs.tick, fonts.SizeTick},
		{&fs.note, fonts.SizeNote},
	} {
		if *s.dst, err = fonts.Face(s.size); err != nil {
			return faceSet{}, fmt.Errorf("load %s %.0fpt: %w", fonts.FontFamily, s.size, err)
		}
	}
	return fs, nil
}

func drawYAxis(dc *gg.Context, p plot, f frame, faces faceSet) {
	dc.SetFontFace(faces.tick)
	dc.SetLineWidth(1)
	for c := 0.0; c <= f.yMax; c += f.yStep {
		y := p.y(c)
		dc.SetColor(colorGrid)
		dc.DrawLine(p.x0, y, p.x1, y)
		dc.Stroke()
		dc.SetColor(colorAxis)
		dc.DrawLine(p.x0-4, y, p.x0, y)
		dc.Stroke()
		dc.DrawStringAnchored(strconv.Itoa(int(c)), p.x0-6, y, 1, 0.35)
	}
	dc.SetColor(colorAxis)
	dc.DrawLine(p.x0, p.y0, p.x0, p.y1)
	dc.Stroke()
}

func drawBars(dc *gg.Context, p plot, h *histogram.Histogram, f frame, fill float64, faces faceSet) {
	dc.SetFontFace(faces.tick)
	for i, n := range h.Counts {
		lo, hi := h.Edges[i], h.Edges[i+1]
		pad := (hi - lo) * (1 - fill) / 2
		left, right := p.x(lo+pad), p.x(hi-pad)

		shown := min(float64(n), f.yMax)
		top := p.y(shown)
		if n > 0 {
			dc.SetColor(colorBar)
			dc.DrawRectangle(left, top, right-left, p.y1-top)
			dc.Fill()
		}

		label := strconv.Itoa(n)
		if f.clipped && i == h.Dominant {
			label += "*"
		}
		dc.SetColor(colorAxis)
		dc.DrawStringAnchored(label, (left+right)/2, top-3, 0.5, 0)
	}
}

func drawXAxis(dc *gg.Context, p plot, h *histogram.Histogram, faces faceSet) {
	dc.SetColor(colorAxis)
	dc.SetLineWidth(1)
	dc.DrawLine(p.x0, p.y1, p.x1, p.y1)
	dc.Stroke()

	dc.SetFontFace(faces.tick)
	for _, e := range h.Edges {
		x := p.x(e)
		dc.DrawLine(x, p.y1, x, p.y1+4)
		dc.Stroke()

		dc.Push()
		dc.RotateAbout(gg.Radians(-45), x, p.y1+8)
		dc.DrawStringAnchored(formatEdge(e), x, p.y1+8, 1, 0.5)
		dc.Pop()
	}
}

func drawLabels(dc *gg.Context, p plot, h *histogram.Histogram, r renderer, faces faceSet) {
	dc.SetColor(colorAxis)

	dc.SetFontFace(faces.title)
	dc.DrawStringAnchored(h.Title+" Histogram", float64(r.width)/2, marginTop/2, 0.5, 0.5)

	dc.SetFontFace(faces.label)
	dc.DrawStringAnchored(h.Title, (p.x0+p.x1)/2, float64(r.height)-14, 0.5, 0)

	dc.Push()
	cx, cy := 16.0, (p.y0+p.y1)/2
	dc.RotateAbout(gg.Radians(-90), cx, cy)
	dc.DrawStringAnchored("Frequency", cx, cy, 0.5, 0.5)
	dc.Pop()
}

// clipNote returns the lines of the note explaining a clipped bar.
func clipNote(h *histogram.Histogram) []string {
	return []string{
		"*range for " + h.Title,
		"with highest frequency of " + strconv.Itoa(h.Counts[h.Dominant]),
		"exceeds y-axis limit",
	}
}

func drawClipNote(dc *gg.Context, p plot, h *histogram.Histogram, faces faceSet) {
	dc.SetFontFace(faces.note)
	dc.SetColor(colorNote)

	// Keep the note away from the dominant bar.
	x, ax := p.x1-6, 1.0
	if h.Dominant >= h.Bins()/2 {
		x, ax = p.x0+6, 0.0
	}
	lh := faces.note.Metrics().Height.Ceil()
	for i, line := range clipNote(h) {
		dc.DrawStringAnchored(line, x, p.y0+12+float64(i*lh), ax, 0)
	}
}

func formatEdge(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
