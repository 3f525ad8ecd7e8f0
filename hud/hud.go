// Package hud composites the overlay UI on top of the rendered scene: a
// static title block and a telemetry readout that random-walks once per
// second. The readout is decorative and reads nothing from the renderer.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	updatePeriodMS = 1000

	panelW = 280
	panelH = 72
	titleW = 360
	titleH = 56

	margin = 24
)

var (
	titleColor    = color.RGBA{R: 0xE8, G: 0xEE, B: 0xFF, A: 0xFF}
	subtitleColor = color.RGBA{R: 0x8A, G: 0x97, B: 0xC0, A: 0xFF}
	readoutColor  = color.RGBA{R: 0x6E, G: 0xD8, B: 0xEE, A: 0xFF}
	labelColor    = color.RGBA{R: 0x70, G: 0x7C, B: 0xA8, A: 0xFF}
)

// HUD owns the overlay images and the telemetry walk state.
type HUD struct {
	rng  *rand.Rand
	tele telemetry

	title *ebiten.Image

	panel    *ebiten.Image
	panelImg *image.RGBA

	lastUpdateMS float64
	started      bool
}

func New(rng *rand.Rand) *HUD {
	h := &HUD{
		rng:      rng,
		tele:     newTelemetry(rng),
		title:    ebiten.NewImage(titleW, titleH),
		panel:    ebiten.NewImage(panelW, panelH),
		panelImg: image.NewRGBA(image.Rect(0, 0, panelW, panelH)),
	}
	h.drawTitle()
	h.redrawPanel()
	return h
}

// Advance re-rolls the telemetry readout once per update period.
func (h *HUD) Advance(nowMS float64) {
	if !h.started {
		h.started = true
		h.lastUpdateMS = nowMS
		return
	}
	if nowMS-h.lastUpdateMS < updatePeriodMS {
		return
	}
	h.lastUpdateMS = nowMS
	h.tele.step(h.rng)
	h.redrawPanel()
}

// Draw composites the overlay. Title top-left, telemetry bottom-left.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h == nil || dst == nil {
		return
	}
	bounds := dst.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(margin, margin)
	dst.DrawImage(h.title, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(margin, float64(bounds.Dy()-panelH-margin))
	dst.DrawImage(h.panel, op)
}

func (h *HUD) drawTitle() {
	img := image.NewRGBA(image.Rect(0, 0, titleW, titleH))
	d := &imageDisplayer{img: img}
	tinyfont.WriteLine(d, &freemono.Bold9pt7b, 0, 18, "PLANETARIA", titleColor)
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 1, 38, "ORBITAL NODE NETWORK // LIVE FEED", subtitleColor)
	h.title.WritePixels(img.Pix)
}

func (h *HUD) redrawPanel() {
	img := h.panelImg
	clear(img.Pix)

	d := &imageDisplayer{img: img}
	font := &proggy.TinySZ8pt7b

	tinyfont.WriteLine(d, font, 0, 12, "COORD", labelColor)
	tinyfont.WriteLine(d, font, 56, 12, fmt.Sprintf("%+08.4f / %+09.4f", h.tele.Lat, h.tele.Lon), readoutColor)
	tinyfont.WriteLine(d, font, 0, 32, "NODES", labelColor)
	tinyfont.WriteLine(d, font, 56, 32, fmt.Sprintf("%d", h.tele.Nodes), readoutColor)
	tinyfont.WriteLine(d, font, 0, 52, "LOAD", labelColor)
	tinyfont.WriteLine(d, font, 56, 52, fmt.Sprintf("%04.1f%%", h.tele.Load), readoutColor)

	h.panel.WritePixels(img.Pix)
}

// imageDisplayer adapts an RGBA image to tinyfont's displayer contract.
type imageDisplayer struct {
	img *image.RGBA
}

func (d *imageDisplayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= d.img.Bounds().Dx() || int(y) >= d.img.Bounds().Dy() {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *imageDisplayer) Display() error { return nil }
