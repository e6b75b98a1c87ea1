package game

import "fmt"

// Diff returns the cells to clear (in old but not in next) and the cells to
// paint (in next but not in old). Membership is by coordinate, not by index.
func Diff(old, next Snake) (removed, added []Point) {
	return subtract(old, next), subtract(next, old)
}

func subtract(a, b Snake) []Point {
	var out []Point
	for _, p := range a.body() {
		if !b.Occupies(p) {
			out = append(out, p)
		}
	}
	return out
}

// RenderDiff brings grid from showing old to showing next.
// It does not flush; callers Draw once per tick.
func RenderDiff(grid Grid, old, next Snake) error {
	removed, added := Diff(old, next)

	for _, p := range removed {
		if err := grid.SetCell(int(p.X), int(p.Y), nil); err != nil {
			return fmt.Errorf("clear cell %v: %w", p, err)
		}
	}

	cell := SnakeCell
	for _, p := range added {
		if err := grid.SetCell(int(p.X), int(p.Y), &cell); err != nil {
			return fmt.Errorf("paint cell %v: %w", p, err)
		}
	}
	return nil
}
