package engine

// CellState describes what occupies a single grid cell.
// CellUnknown is only ever returned for out-of-bounds queries; it is never
// stored in the grid and signals "outside the playable area".
type CellState int

const (
	CellUnknown CellState = iota
	CellEmpty
	CellHead
	CellBody
	CellGem
)

func (s CellState) String() string {
	switch s {
	case CellUnknown:
		return "unknown"
	case CellEmpty:
		return "empty"
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellGem:
		return "gem"
	default:
		return "invalid"
	}
}
