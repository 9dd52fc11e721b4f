package simplex

import "log"

// findPivotRow returns the first constraint row whose value ~B_p u is negative under the current T.
// Returns false if every row is feasible, i.e. the solution is optimal
func (t *tableau) findPivotRow() (int, bool) {
	for row := firstConstraintRow; row < t.rows; row++ {
		if t.rowValue(row) < 0 {
			return row, true
		}
	}
	return 0, false
}

// findPivotColumn looks for negative entries of the pivot row in the ~A part. Among several candidates it takes the one
// maximizing objective[col] / pivotCandidate, keeping the leftmost on ties. Returns false if no entry is negative
func (t *tableau) findPivotColumn(pivotRow int) (int, bool) {
	pivotColumn, found := 0, false
	maxQuotient := 0
	for column := firstNonBasicVariableColumn; column < t.columns; column++ {
		pivotCandidate := t.matrix[pivotRow][column]
		if pivotCandidate >= 0 {
			continue
		}
		if pivotCandidate != -1 {
			log.Panicf("tableau entry (%v, %v) is %v, outside of {-1, 0, 1}", pivotRow, column, pivotCandidate)
		}

		// Quotient in general: objective[column] / pivotCandidate
		quotient := -t.matrix[objectiveRow][column]
		if !found || quotient > maxQuotient {
			maxQuotient = quotient
			pivotColumn, found = column, true
		}
	}
	return pivotColumn, found
}

func (t *tableau) multiplyRow(row int, factor int) {
	for column := range t.columns {
		t.matrix[row][column] *= factor
	}
	t.implicitColumn[row] *= factor
}

func (t *tableau) addMultipleOfRow(sourceRow int, factor int, targetRow int) {
	for column := range t.columns {
		t.matrix[targetRow][column] += t.matrix[sourceRow][column] * factor
	}
	t.implicitColumn[targetRow] += t.implicitColumn[sourceRow] * factor
}

// pivot makes pivotColumn a unit vector with its 1 in pivotRow, then exchanges the column's non-basic variable with the
// row's basic variable
func (t *tableau) pivot(pivotRow, pivotColumn int) {
	// The implicit columns form an identity matrix
	t.implicitColumn[pivotRow] = 1

	pivotElement := t.matrix[pivotRow][pivotColumn]
	if pivotElement != -1 {
		log.Panicf("pivot element (%v, %v) is %v instead of -1", pivotRow, pivotColumn, pivotElement)
	}
	t.multiplyRow(pivotRow, -1) // Factor in general: 1 / pivotElement

	for row := range t.rows {
		if row == pivotRow {
			continue
		}
		element := t.matrix[row][pivotColumn]
		if element == 0 {
			continue
		}
		t.addMultipleOfRow(pivotRow, -element, row) // Factor in general: -element / pivotElement
	}

	// The former pivot column is now a unit vector, hence implicit; the displaced basic variable's column takes its place
	for row := range t.rows {
		t.matrix[row][pivotColumn] = t.implicitColumn[row]
		t.implicitColumn[row] = 0
	}

	nonBasicIndex, basicIndex := pivotColumn-firstNonBasicVariableColumn, pivotRow-firstConstraintRow
	t.nonBasicVariables[nonBasicIndex], t.basicVariables[basicIndex] = t.basicVariables[basicIndex], t.nonBasicVariables[nonBasicIndex]
}
