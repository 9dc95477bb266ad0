package maze

// MaxCost is the sentinel cost of a cell the last flood did not reach.
// Real distances on a 16×16 grid stay far below it.
const MaxCost uint8 = 255

// CostField holds the per-cell move count to the last flood target.
// Values are only meaningful while the field is sealed; any wall change
// made through Maze invalidates it.
type CostField struct {
	cost   [Cells]uint8
	target Cell
	valid  bool
}

// Reset sets every cost to MaxCost and marks the field unsealed.
func (f *CostField) Reset() {
	for i := range f.cost {
		f.cost[i] = MaxCost
	}
	f.valid = false
}

// Cost returns the stored cost of cell.
func (f *CostField) Cost(cell Cell) uint8 {
	return f.cost[cell]
}

// Set stores v as the cost of cell.
func (f *CostField) Set(cell Cell, v uint8) {
	f.cost[cell] = v
}

// Reached reports whether cell holds a real distance.
func (f *CostField) Reached(cell Cell) bool {
	return f.cost[cell] != MaxCost
}

// Seal marks the field as the fresh result of a flood toward target.
func (f *CostField) Seal(target Cell) {
	f.target = target
	f.valid = true
}

// Invalidate marks the field stale. Stored costs are kept for inspection.
func (f *CostField) Invalidate() {
	f.valid = false
}

// Target returns the cell the field was flooded toward and whether the
// field is still fresh.
func (f *CostField) Target() (Cell, bool) {
	return f.target, f.valid
}

// Snapshot returns a copy of all 256 costs.
func (f *CostField) Snapshot() [Cells]uint8 {
	return f.cost
}
