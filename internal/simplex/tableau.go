package simplex

// Mode selects whether a Tableau's objective row is minimized or
// maximized; the two modes lay out the initial tableau differently
// (MAX keeps the objective as the top row, MIN transposes it into the
// first column) so that the same pivoting code serves both.
type Mode int

const (
	Min Mode = iota
	Max
)

const epsilon = 1.0e-8

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

// Tableau is a dense simplex tableau: mat[0] holds the objective row (or,
// in Min mode, the right-hand sides of the objective column), and
// mat[1:] holds the constraint rows.
type Tableau struct {
	Obj    Mode
	VarNum int
	Mat    [][]float64
}

// NewTableau builds the initial tableau for an objective over coefficients
// vars.
func NewTableau(obj Mode, vars []float64) *Tableau {
	t := &Tableau{Obj: obj, VarNum: len(vars)}
	if obj == Max {
		row := make([]float64, len(vars)+1)
		copy(row[1:], vars)
		t.Mat = [][]float64{row}
		return t
	}

	t.Mat = make([][]float64, len(vars)+1)
	for i := range t.Mat {
		t.Mat[i] = []float64{0}
	}
	for i, v := range vars {
		t.Mat[i+1][0] = v
	}
	return t
}

// AddConstraint appends one constraint row (Max mode) or column (Min
// mode). A length mismatch against the tableau's current shape is a
// silent no-op, matching the reference tableau's own behavior.
func (t *Tableau) AddConstraint(vars []float64) {
	if t.Obj == Max {
		if len(vars) != t.ColSize() {
			return
		}
		t.Mat = append(t.Mat, vars)
		return
	}

	if len(vars) != t.RowSize() {
		return
	}
	for i, v := range vars {
		t.Mat[i] = append(t.Mat[i], v)
	}
}

// RowSize returns the number of rows in the tableau.
func (t *Tableau) RowSize() int { return len(t.Mat) }

// ColSize returns the number of columns in the tableau's first row.
func (t *Tableau) ColSize() int { return len(t.Mat[0]) }
