package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/slicerbits/walloverlap/proximity"
)

// Demo of the proximity linker. Input on stdin should be newline separated
// points in the form "x y" (micrometres), with each polygon separated by an
// extra newline. The polygons are linked at the given line width and the
// resulting link graph can be dumped as SVG or PNG; --flow additionally
// prints the flow for every segment of the (mutated) polygons, traversed in
// ring order.
var (
	lineWidth = kingpin.Flag("width", "Line width / proximity distance in micrometres.").Short('w').Default("400").Int64()
	svgOut    = kingpin.Flag("svg", "Write the link graph to this SVG file.").String()
	pngOut    = kingpin.Flag("png", "Render the link graph to this PNG file.").String()
	pngScale  = kingpin.Flag("scale", "Pixels per micrometre for --png.").Default("0.05").Float64()
	cat       = kingpin.Flag("cat", "Also write the PNG to the terminal with imgcat.").Bool()
	showFlow  = kingpin.Flag("flow", "Print the flow for every wall segment.").Bool()
)

func main() {
	kingpin.Parse()

	polygons := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(polygons))

	overlap := proximity.NewWallOverlap(polygons, *lineWidth)
	linker := overlap.Linker()
	fmt.Printf("%d primary links, %d endings\n", len(linker.PrimaryLinks()), len(linker.EndingLinks()))

	if *svgOut != "" {
		if err := linker.WriteSVG(*svgOut); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if *pngOut != "" {
		if err := linker.DrawPNG(*pngOut, *pngScale, *cat); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if *showFlow {
		for i, poly := range polygons {
			for j, from := range poly.Points {
				to := poly.Points[(j+1)%len(poly.Points)]
				flow := overlap.Flow(from, to)
				fmt.Printf("poly %d segment (%d,%d)->(%d,%d): flow %.3f\n",
					i, from.X, from.Y, to.X, to.Y, flow)
			}
		}
	}
}

func readPolygons(in *os.File) []proximity.Polygon {
	polygons := []proximity.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []proximity.Point{}
	for scanner.Scan() {
		line := scanner.Text()

		// An empty line ends the current polygon.
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polygons = append(polygons, proximity.Polygon{Points: points})
				points = []proximity.Point{}
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	// Handle a trailing polygon if any.
	if len(points) > 0 {
		polygons = append(polygons, proximity.Polygon{Points: points})
	}
	return polygons
}

func parsePoint(line string) proximity.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return proximity.Point{X: x, Y: y}
}
