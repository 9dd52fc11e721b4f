// Package simplex schedules resource-free problems with a specialised dual simplex solver.
//
// Precedence constraints between operations form an integer linear program with a totally unimodular constraint
// matrix, so the (non-integer) LP optimum is integral and every pivot element is -1. The tableau is kept in integers
// and the identity block of the basic variables is left implicit.
//
// Cyclic problems are solved as lexico-parametric programs over the initiation interval T: whenever a row is
// infeasible, has no pivot candidate and a positive T coefficient, T grows to the smallest value repairing the row.
// The final T is the recurrence-constrained minimum II (RecMII).
//
// The approach is described in B. D. de Dinechin, "Simplex Scheduling: More than Lifetime-Sensitive Instruction
// Scheduling", PRISM 1994.22, 1994.
package simplex
