package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/quadtree"
)

// Demo of Delaunay triangulation. Reads newline separated points in the form
// "x y" on stdin, or generates a uniform random cloud, triangulates them, and
// renders the mesh to a PNG. Optionally answers a nearest-site query through
// the quadtree, and previews the render inline (iTerm only).

var (
	count   = kingpin.Flag("count", "Generate this many random points instead of reading stdin.").Int()
	width   = kingpin.Flag("width", "Width of the point field.").Default("500").Float64()
	height  = kingpin.Flag("height", "Height of the point field.").Default("500").Float64()
	seed    = kingpin.Flag("seed", "Random seed; 0 means time-based.").Int64()
	margin  = kingpin.Flag("margin", "Super triangle scale factor.").Default("2").Float64()
	scale   = kingpin.Flag("scale", "Render scale, pixels per unit.").Default("1").Float64()
	out     = kingpin.Flag("out", "Output PNG path.").Default("triangulation.png").String()
	preview = kingpin.Flag("preview", "Print the render inline (iTerm only).").Bool()
	nearest = kingpin.Flag("nearest", "Report the site nearest to \"x,y\".").String()
)

func main() {
	kingpin.Parse()

	var points []*delaunay.Point
	if *count > 0 {
		points = randomPoints(*count, *width, *height, *seed)
	} else {
		points = readPoints(os.Stdin)
	}
	fmt.Println("Read", aurora.Cyan(len(points)), "points")

	super, err := delaunay.NewSuperTriangle(points, *margin)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	start := time.Now()
	triangles, err := delaunay.Triangulate(points, super)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Println("Produced", aurora.Green(len(triangles)), "triangles in", aurora.Yellow(elapsed))

	if *nearest != "" {
		reportNearest(points, *nearest)
	}

	if len(triangles) == 0 {
		return
	}
	c := triangles.NewContext(*scale)
	c.SetLineWidth(2)
	triangles.Draw(c)
	if err := c.SavePNG(*out); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	fmt.Println("Wrote", aurora.Cyan(*out))

	if *preview {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func reportNearest(points []*delaunay.Point, query string) {
	parts := strings.Split(query, ",")
	if len(parts) != 2 {
		fmt.Fprintln(os.Stderr, aurora.Red("--nearest wants \"x,y\""))
		os.Exit(1)
	}
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)

	tree := quadtree.New(boundsOf(points), quadtree.DefaultCapacity, quadtree.DefaultMaxDepth)
	for _, p := range points {
		tree.Insert(p)
	}

	found := tree.FindNearest(x, y, *width + *height)
	if found == nil {
		fmt.Println("No site near", query)
		return
	}
	fmt.Printf("Nearest site to (%g, %g): (%g, %g)\n", x, y, found.X, found.Y)
}

func boundsOf(points []*delaunay.Point) quadtree.Rect {
	bounds := quadtree.Rect{
		MinX: points[0].X, MinY: points[0].Y,
		MaxX: points[0].X, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < bounds.MinX {
			bounds.MinX = p.X
		}
		if p.Y < bounds.MinY {
			bounds.MinY = p.Y
		}
		if p.X > bounds.MaxX {
			bounds.MaxX = p.X
		}
		if p.Y > bounds.MaxY {
			bounds.MaxY = p.Y
		}
	}
	return bounds
}

func randomPoints(n int, width, height float64, seed int64) []*delaunay.Point {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	points := make([]*delaunay.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, &delaunay.Point{
			X: r.Float64() * width,
			Y: r.Float64() * height,
		})
	}
	return points
}

func readPoints(in *os.File) []*delaunay.Point {
	points := []*delaunay.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point := parsePoint(line)
		points = append(points, &point)
	}
	return points
}

func parsePoint(line string) delaunay.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return delaunay.Point{X: x, Y: y}
}
