package proximity

import (
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/slicerbits/walloverlap/dbg"
)

const drawPadding = 20

// DrawPNG renders the rings and the link graph to a PNG, mostly useful while
// debugging link placement. When cat is true the image is also written to the
// terminal with imgcat.
func (lk *Linker) DrawPNG(path string, scale float64, cat bool) error {
	minP, maxP := lk.boundingBox()
	size := maxP.Sub(minP)

	width := int(scale*float64(size.X)) + drawPadding*2
	height := int(scale*float64(size.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-float64(minP.X), -float64(minP.Y))

	c.SetLineWidth(2)
	for _, ring := range lk.rings {
		it := ring.Head()
		c.MoveTo(float64(it.Point().X), float64(it.Point().Y))
		for it = it.Next(); it != ring.Head(); it = it.Next() {
			c.LineTo(float64(it.Point().X), float64(it.Point().Y))
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	drawLinks := func(links []*Link, r, g, b float64) {
		c.SetRGB(r, g, b)
		for _, link := range links {
			pa, pb := link.A.Point(), link.B.Point()
			c.DrawLine(float64(pa.X), float64(pa.Y), float64(pb.X), float64(pb.Y))
			c.Stroke()
		}
	}
	drawLinks(lk.primary.order, 1, 0, 0)
	drawLinks(lk.endings.order, 0, 1, 0)

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	if cat {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

// DbgName gives the linker a stable readable name for debug prints, colored
// by whether any overlap was found.
func (lk *Linker) DbgName() string {
	name := dbg.Name(lk)
	if lk.primary.len() == 0 && lk.endings.len() == 0 {
		return aurora.Cyan(name).String()
	}
	return aurora.Red(name).String()
}
