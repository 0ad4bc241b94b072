package geometry

import "math"

// PlacementMethod selects how letter-derived numbers are converted into
// 2D points.
type PlacementMethod string

const (
	PlacementRadial PlacementMethod = "radial"
	PlacementSpiral PlacementMethod = "spiral"
	PlacementGrid   PlacementMethod = "grid"
)

// EliminateDuplicateLetters implements the traditional sigil method:
// uppercase the intention, strip non-letters, then keep only the first
// occurrence of each letter in order.
func EliminateDuplicateLetters(intention string) string {
	seen := make(map[rune]bool)
	out := make([]rune, 0, len(intention))
	for _, r := range intention {
		u := toUpperLetter(r)
		if u == 0 {
			continue
		}
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return string(out)
}

func toUpperLetter(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r
	case r >= 'a' && r <= 'z':
		return r - ('a' - 'A')
	default:
		return 0
	}
}

// LettersToNumbers maps each letter to its 1-based alphabet position.
func LettersToNumbers(letters string) []int {
	out := make([]int, 0, len(letters))
	for _, r := range letters {
		out = append(out, int(r-'A')+1)
	}
	return out
}

// NumbersToGeometry places one point per number using the chosen method,
// around the sigil canvas centre (0.5, 0.5). Grid placement stays inside
// [0,1]×[0,1]; radial and spiral placement push each later point further
// out, so longer intentions place points outside that square.
func NumbersToGeometry(numbers []int, method PlacementMethod) []Point {
	switch method {
	case PlacementSpiral:
		return spiralPlacement(numbers)
	case PlacementGrid:
		return gridPlacement(numbers)
	default:
		return radialPlacement(numbers)
	}
}

func radialPlacement(numbers []int) []Point {
	points := make([]Point, 0, len(numbers))
	for i, n := range numbers {
		angle := float64(n) * 360.0 / 26.0 * math.Pi / 180.0
		radius := 0.3 + float64(i)*0.1
		points = append(points, Point{
			X: 0.5 + radius*math.Cos(angle),
			Y: 0.5 + radius*math.Sin(angle),
		})
	}
	return points
}

func spiralPlacement(numbers []int) []Point {
	points := make([]Point, 0, len(numbers))
	for i := range numbers {
		angle := float64(i) * GoldenRatio * 2 * math.Pi
		radius := 0.1 + float64(i)*0.05
		points = append(points, Point{
			X: 0.5 + radius*math.Cos(angle),
			Y: 0.5 + radius*math.Sin(angle),
		})
	}
	return points
}

func gridPlacement(numbers []int) []Point {
	n := len(numbers)
	if n == 0 {
		return nil
	}
	gridSize := int(math.Ceil(math.Sqrt(float64(n))))
	points := make([]Point, 0, n)
	for i := range numbers {
		row := i / gridSize
		col := i % gridSize
		points = append(points, Point{
			X: (float64(col) + 0.5) / float64(gridSize),
			Y: (float64(row) + 0.5) / float64(gridSize),
		})
	}
	return points
}

// ConnectionMethod selects how placed points are joined into lines.
type ConnectionMethod string

const (
	ConnectSequential ConnectionMethod = "sequential"
	ConnectStar       ConnectionMethod = "star"
	ConnectWeb        ConnectionMethod = "web"
)

// ConnectPoints joins a point set into lines per the chosen method.
func ConnectPoints(points []Point, method ConnectionMethod) []Line {
	switch method {
	case ConnectStar:
		center := Point{X: 0.5, Y: 0.5}
		lines := make([]Line, 0, len(points))
		for _, p := range points {
			lines = append(lines, Line{Start: center, End: p})
		}
		return lines
	case ConnectWeb:
		var lines []Line
		for i, a := range points {
			for _, b := range points[i+1:] {
				lines = append(lines, Line{Start: a, End: b})
			}
		}
		return lines
	default:
		lines := make([]Line, 0, len(points))
		for i := 0; i+1 < len(points); i++ {
			lines = append(lines, Line{Start: points[i], End: points[i+1]})
		}
		return lines
	}
}

// Sigil is the final composition returned to a caller: the connecting
// lines, one invariant decoration circle at the centre, and one small
// decoration circle at every other line's endpoint (§4.2.4).
type Sigil struct {
	Lines            []Line
	DecorationCircles []Circle
	Center           Point
}

// GenerateTraditionalSigil runs the full pipeline described in §4.2.4:
// deduplicate letters, map to numbers, place on the canvas, connect
// sequentially, and decorate with invariant circles.
func GenerateTraditionalSigil(intention string) Sigil {
	letters := EliminateDuplicateLetters(intention)
	numbers := LettersToNumbers(letters)
	points := NumbersToGeometry(numbers, PlacementRadial)
	lines := ConnectPoints(points, ConnectSequential)

	center := Point{X: 0.5, Y: 0.5}
	decorations := []Circle{{Center: center, Radius: 0.05}}
	for i, l := range lines {
		if i%2 == 0 {
			decorations = append(decorations, Circle{Center: l.End, Radius: 0.02})
		}
	}

	return Sigil{Lines: lines, DecorationCircles: decorations, Center: center}
}
