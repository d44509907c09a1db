package simplex

// pivotOn performs a Gauss-Jordan pivot at (row, col): normalizes that
// row to make mat[row][col] == 1, then clears col in every other row.
func pivotOn(t *Tableau, row, col int) {
	pivot := t.Mat[row][col]
	for j := 0; j < t.ColSize(); j++ {
		t.Mat[row][j] /= pivot
	}

	for i := 0; i < t.RowSize(); i++ {
		if i == row {
			continue
		}
		multiplier := t.Mat[i][col]
		for j := 0; j < t.ColSize(); j++ {
			t.Mat[i][j] -= multiplier * t.Mat[row][j]
		}
	}
}

// findPivotColumn returns the most negative column in the objective row,
// or -1 once every entry is nonnegative (the tableau is optimal).
func findPivotColumn(t *Tableau) int {
	col := 1
	lowest := t.Mat[0][col]
	for j := 1; j < t.ColSize(); j++ {
		if t.Mat[0][j] < lowest {
			lowest = t.Mat[0][j]
			col = j
		}
	}
	if lowest >= 0 {
		return -1
	}
	return col
}

// findPivotRow returns the row with the smallest positive ratio
// mat[i][0]/mat[i][col], or -1 if the problem is unbounded in that
// column.
func findPivotRow(t *Tableau, col int) int {
	row := 0
	first := true
	minRatio := 0.0
	for i := 1; i < t.RowSize(); i++ {
		if t.Mat[i][col] <= epsilon {
			continue
		}
		ratio := t.Mat[i][0] / t.Mat[i][col]
		if (ratio > 0 && ratio < minRatio) || first {
			minRatio = ratio
			row = i
			first = false
		}
	}
	if first {
		return -1
	}
	return row
}

// addSlackVariables widens every row with slack columns so each
// constraint row gets its own unit column, turning the inequality system
// into the augmented form the pivot steps operate on.
func addSlackVariables(t *Tableau) {
	target := t.ColSize() + t.RowSize() - 1
	for i := range t.Mat {
		for len(t.Mat[i]) < target {
			t.Mat[i] = append(t.Mat[i], 0)
		}
		if i != 0 {
			t.Mat[i][i+target-t.RowSize()] = 1.0
		}
	}
}

// findBasisVariable returns the row containing the lone 1 in col if col
// is a unit column of the identity submatrix, or -1 otherwise.
func findBasisVariable(t *Tableau, col int) int {
	xi := -1
	for i := 1; i < t.RowSize(); i++ {
		switch {
		case approxEqual(t.Mat[i][col], 1):
			if xi != -1 {
				return -1
			}
			xi = i
		case !approxEqual(t.Mat[i][col], 0):
			return -1
		}
	}
	return xi
}

// GetSolution reads off the variable assignment implied by the final
// tableau.
func GetSolution(t *Tableau) []float64 {
	sol := make([]float64, t.VarNum)
	if t.Obj == Max {
		for j := 1; j <= t.VarNum; j++ {
			if xi := findBasisVariable(t, j); xi != -1 {
				sol[j-1] = t.Mat[xi][0]
			}
		}
		return sol
	}

	for i := t.ColSize() - t.VarNum; i < t.ColSize(); i++ {
		sol[i+t.VarNum-t.ColSize()] = t.Mat[0][i]
	}
	return sol
}

// Solve runs the simplex method to completion, returning false if the
// tableau turns out unbounded or exceeds its iteration budget.
func Solve(t *Tableau) bool {
	maxIter := t.ColSize()
	if t.RowSize() > maxIter {
		maxIter = t.RowSize()
	}

	for i := 0; i < t.ColSize(); i++ {
		t.Mat[0][i] *= -1.0
	}
	addSlackVariables(t)

	for ; maxIter > 0; maxIter-- {
		col := findPivotColumn(t)
		if col < 0 {
			return true
		}
		row := findPivotRow(t, col)
		if row < 0 {
			return false
		}
		pivotOn(t, row, col)
	}
	return false
}
