package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Image bands: a fixed drawing height shared out between the levels.
const (
	imageSoil    = 60
	imageLevels  = 170
	imageFooting = 50
)

func imageBands(levels int) Bands {
	if levels < 1 {
		levels = 1
	}
	return Bands{Soil: imageSoil, Level: imageLevels / float64(levels), Footing: imageFooting}
}

var (
	soilFill    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	footingFill = color.RGBA{R: 224, G: 224, B: 224, A: 255}
	waterBlue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Plot builds the schematic cross-section. Depth runs downward from GL at y = 0.
func Plot(s Section) (*plot.Plot, error) {
	b := imageBands(len(s.LevelHeightsMM))
	p := plot.New()
	p.Title.Text = "Section"
	p.HideAxes()

	rect := func(x0, x1, top, bottom float64, fill color.Color) error {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: x0, Y: -top}, {X: x1, Y: -top}, {X: x1, Y: -bottom}, {X: x0, Y: -bottom},
		})
		if err != nil {
			return err
		}
		poly.Color = fill
		poly.LineStyle.Color = color.Black
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)
		return nil
	}
	var labels plotter.XYLabels
	label := func(x, y float64, text string) {
		labels.XYs = append(labels.XYs, plotter.XY{X: x, Y: -y})
		labels.Labels = append(labels.Labels, text)
	}

	gl, err := plotter.NewLine(plotter.XYs{{X: 30, Y: 0}, {X: 320, Y: 0}})
	if err != nil {
		return nil, err
	}
	gl.LineStyle.Width = vg.Points(2)
	p.Add(gl)
	label(325, 0, "GL")

	if err := rect(100, 300, 0, b.Soil, soilFill); err != nil {
		return nil, err
	}
	label(40, b.Soil/2, fmt.Sprintf("%g", s.SoilHeightMM))
	label(170, b.Soil/2, "soil")

	y := b.Soil
	for i, h := range s.LevelHeightsMM {
		if err := rect(100, 300, y, y+b.Level, color.White); err != nil {
			return nil, err
		}
		label(40, y+b.Level/2, fmt.Sprintf("%g", h))
		label(180, y+b.Level/2, fmt.Sprintf("B%dF", i+1))
		y += b.Level
	}
	if err := rect(50, 350, y, y+b.Footing, footingFill); err != nil {
		return nil, err
	}
	label(140, y+b.Footing/2, fmt.Sprintf("footing (%g)", s.FootingThickMM))

	wy := WaterMarkY(s, b)
	water, err := plotter.NewLine(plotter.XYs{{X: 310, Y: -wy}, {X: 340, Y: -wy}})
	if err != nil {
		return nil, err
	}
	water.LineStyle.Color = waterBlue
	water.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(water)
	label(345, wy, fmt.Sprintf("(GL-%g)", s.GroundwaterDepthM))

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)

	p.X.Min, p.X.Max = 0, 450
	p.Y.Min, p.Y.Max = -(b.Total(len(s.LevelHeightsMM))+20), 20
	return p, nil
}

const (
	imageWidth  = 6 * vg.Inch
	imageHeight = 5.6 * vg.Inch
)

// Export saves the diagram, choosing the format from the extension. Unknown
// extensions get .png appended.
func Export(s Section, filename string) (string, error) {
	p, err := Plot(s)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	return filename, p.Save(imageWidth, imageHeight, filename)
}

// WritePNG renders the diagram straight to w.
func WritePNG(w io.Writer, s Section) error {
	p, err := Plot(s)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(imageWidth, imageHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
