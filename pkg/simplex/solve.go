package simplex

// solve iterates as long as some row's value is negative. Each round either pivots, increases the II or gives up
func (t *tableau) solve(config *options, solution *Solution) error {
	for {
		pivotRow, ok := t.findPivotRow()
		if !ok {
			return nil // Optimal solution found
		}

		if config.iterationLimit > 0 && solution.Pivots+solution.IIIncreases >= config.iterationLimit {
			return ErrIterationLimit
		}

		if pivotColumn, ok := t.findPivotColumn(pivotRow); ok {
			t.pivot(pivotRow, pivotColumn)
			solution.Pivots++
			config.logger.Debug("pivoted", "row", pivotRow, "column", pivotColumn)
			config.notify(t, Event{Kind: Pivoted, PivotRow: pivotRow, PivotColumn: pivotColumn})
			continue
		}

		// The row has no negative entry, so it cannot be repaired by pivoting. A positive entry in the T column means
		// the row becomes feasible again for a larger II
		entry1Column := t.matrix[pivotRow][parameter1Column]
		entryTColumn := t.matrix[pivotRow][parameterTColumn]
		if entryTColumn > 0 {
			// entry1Column is negative here, otherwise the row would be feasible. The negation is absent from
			// de Dinechin's formulation, without it the new II would be negative
			t.parameterT = (-entry1Column-1)/entryTColumn + 1
			solution.IIIncreases++
			config.logger.Debug("increased II", "ii", t.parameterT, "row", pivotRow)
			config.notify(t, Event{Kind: IncreasedII, PivotRow: pivotRow})
			continue
		}

		return ErrInfeasible
	}
}
