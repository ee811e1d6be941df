package playfield

// IsRowFull reports whether row y has no empty cell.
func (p *Playfield) IsRowFull(y int) bool {
	for _, c := range p.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down by
// one and inserting an empty row at the top, and returns how many rows were
// removed. Rows are scanned bottom to top and a row index is re-examined
// after a shift, since the row that moved into it has not been checked yet.
func (p *Playfield) ClearFullRows() int {
	cleared := 0
	for y := p.height - 1; y >= 0; {
		if !p.IsRowFull(y) {
			y--
			continue
		}
		p.removeRow(y)
		cleared++
	}
	return cleared
}

// removeRow drops row y and shifts everything above it down one row. The
// removed row's slice is reused as the new top row.
func (p *Playfield) removeRow(y int) {
	row := p.cells[y]
	copy(p.cells[1:y+1], p.cells[:y])
	clear(row)
	p.cells[0] = row
}
