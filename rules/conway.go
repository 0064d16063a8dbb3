package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: neighbors == 3 || (alive && neighbors == 2)

Three live neighbors always yield a live cell, whatever its current state.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
