package domino

// GridCells is the number of cells in one half's 3×3 dot grid.
const GridCells = 9

// dotPositions maps a pip value to lit cells, numbered row-major 0..8.
var dotPositions = [MaxPip + 1][]int{
	0: {},
	1: {4},
	2: {0, 8},
	3: {0, 4, 8},
	4: {0, 2, 6, 8},
	5: {0, 2, 4, 6, 8},
	6: {0, 2, 3, 5, 6, 8},
}

// Dots returns the lit grid cells for pip. Out-of-range values have none.
func Dots(pip int) []int {
	if pip < MinPip || pip > MaxPip {
		return nil
	}
	out := make([]int, len(dotPositions[pip]))
	copy(out, dotPositions[pip])
	return out
}

// DotGrid returns the 3×3 grid for pip as booleans, row-major.
func DotGrid(pip int) [GridCells]bool {
	var g [GridCells]bool
	for _, c := range Dots(pip) {
		g[c] = true
	}
	return g
}
