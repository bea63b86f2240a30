package model

// Equilibrium is the intersection of the IS and LM lines.
// It is the raw solution and may lie outside any plotted range.
type Equilibrium struct {
	YStar float64
	IStar float64
}
