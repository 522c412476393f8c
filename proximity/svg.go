package proximity

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

const svgViewport = 2048

// WriteSVG dumps the link graph for inspection: polygon outlines, every
// vertex, and one line per link. Endings (links at exactly the proximity
// distance) are green, closer primary links red.
func (lk *Linker) WriteSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create proximity svg")
	}

	w := bufio.NewWriter(f)
	lk.writeSVG(w)
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "write proximity svg")
	}
	return errors.Wrap(f.Close(), "write proximity svg")
}

func (lk *Linker) writeSVG(w *bufio.Writer) {
	minP, maxP := lk.boundingBox()
	// Some margin so the outermost links don't touch the canvas edge.
	minP = minP.Sub(Point{200, 200})
	maxP = maxP.Add(Point{200, 200})

	size := maxP.Sub(minP)
	scale := float64(svgViewport) / float64(max64(size.X, size.Y))
	tx := func(p Point) (float64, float64) {
		// Flip y: polygon space has y up, SVG has y down.
		return float64(p.X-minP.X) * scale, float64(maxP.Y-p.Y) * scale
	}

	fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%d\" height=\"%d\">\n",
		int(float64(size.X)*scale), int(float64(size.Y)*scale))

	for _, ring := range lk.rings {
		fmt.Fprintf(w, "<polygon points=\"")
		it := ring.Head()
		for {
			x, y := tx(it.Point())
			fmt.Fprintf(w, "%.2f,%.2f ", x, y)
			it = it.Next()
			if it == ring.Head() {
				break
			}
		}
		fmt.Fprintf(w, "\" style=\"fill:lightgrey;stroke:black;stroke-width:1\" />\n")

		it = ring.Head()
		for {
			x, y := tx(it.Point())
			fmt.Fprintf(w, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"2\" fill=\"black\" />\n", x, y)
			it = it.Next()
			if it == ring.Head() {
				break
			}
		}
	}

	for _, link := range lk.primary.order {
		lk.writeSVGLink(w, link, tx)
	}
	for _, link := range lk.endings.order {
		lk.writeSVGLink(w, link, tx)
	}

	fmt.Fprintf(w, "</svg>\n")
}

func (lk *Linker) writeSVGLink(w *bufio.Writer, link *Link, tx func(Point) (float64, float64)) {
	red, green := 255, 0
	if link.Dist == lk.proximityDistance {
		red, green = 0, 255
	}
	x1, y1 := tx(link.A.Point())
	x2, y2 := tx(link.B.Point())
	fmt.Fprintf(w, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" style=\"stroke:rgb(%d,%d,0);stroke-width:1\" />\n",
		x1, y1, x2, y2, red, green)
}

func (lk *Linker) boundingBox() (minP, maxP Point) {
	first := true
	for _, ring := range lk.rings {
		it := ring.Head()
		for {
			p := it.Point()
			if first {
				minP, maxP = p, p
				first = false
			} else {
				minP.X = min64(minP.X, p.X)
				minP.Y = min64(minP.Y, p.Y)
				maxP.X = max64(maxP.X, p.X)
				maxP.Y = max64(maxP.Y, p.Y)
			}
			it = it.Next()
			if it == ring.Head() {
				break
			}
		}
	}
	return minP, maxP
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
