package dlx

import "testing"

// triominoShapes holds the two base triominoes (the bent "L" and the
// straight "I"); their rotations and reflections are expanded below into all
// six distinct triominoes used to tile a rectangle.
var triominoShapes = []tile{
	newTile([]point{{0, 0}, {0, 1}, {1, 0}}), // bent
	newTile([]point{{0, 0}, {1, 0}, {2, 0}}), // straight
}

// distinctTriominoes collapses the two base shapes' rotations/reflections
// into the 6 orientations that are pairwise distinct as point sets — unlike
// the pentomino packer, no piece-ID column distinguishes which base shape a
// placement came from, so a duplicate orientation would otherwise be
// double-counted.
func distinctTriominoes() []tile {
	seen := make(map[string]struct{})
	var out []tile
	for _, shape := range triominoShapes {
		for _, orientation := range shape.transformations() {
			k := orientation.key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, orientation)
		}
	}
	return out
}

func packTriominoes(rows, cols int8) []rowSet {
	var placements []rowSet

	for _, shape := range distinctTriominoes() {
		for row := int8(0); row < rows; row++ {
		outer:
			for col := int8(0); col < cols; col++ {
				cells := make([]uint16, len(shape))
				for i, p := range shape {
					np := point{p.i + row, p.j + col}
					if np.i >= rows || np.j >= cols {
						continue outer
					}
					cells[i] = uint16(np.i)*64 + uint16(np.j)
				}
				placements = append(placements, rowSet(cells))
			}
		}
	}

	return placements
}

func TestTriominoSixDistinctOrientations(t *testing.T) {
	if got, want := len(distinctTriominoes()), 6; got != want {
		t.Fatalf("got %d distinct triominoes, want %d", got, want)
	}
}

func TestTriominoRectangle2x9(t *testing.T) {
	solver := New(packTriominoes(2, 9))
	if got, want := solver.CountSolutions(), 41; got != want {
		t.Errorf("2x9 triomino rectangle: got %d raw solutions, want %d", got, want)
	}
}
