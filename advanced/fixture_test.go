package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file loads svg fixtures and produces triangulation sites. It is not a
// full (or even correct) svg parser. It parses the SVG, finds whatever the
// first polygon is, and uses its points as the input site set. If anything
// goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{x, y})
	}
	return points
}

// Some ad hoc generated site sets

func RingSites(n int, cx, cy, radius float64) []*Point {
	points := make([]*Point, 0, n+1)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, &Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	// A center point keeps the whole ring off one circumcircle
	points = append(points, &Point{X: cx, Y: cy})
	return points
}

func GridSites(cols, rows int, spacing float64) []*Point {
	points := make([]*Point, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			points = append(points, &Point{
				X: float64(i) * spacing,
				Y: float64(j) * spacing,
			})
		}
	}
	return points
}

func RandomSites(n int, width, height float64, seed int64) []*Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]*Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, &Point{
			X: r.Float64() * width,
			Y: r.Float64() * height,
		})
	}
	return points
}
