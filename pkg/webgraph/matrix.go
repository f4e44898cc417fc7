package webgraph

import "github.com/matzehuels/linkrank/pkg/errors"

// Matrix is a square boolean adjacency matrix addressed by page index.
// Cell (i, j) is set when page i links to page j.
//
// The zero value is an empty 0×0 matrix ready for use.
type Matrix struct {
	cells [][]bool
}

// NewMatrix returns an empty n×n matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{cells: alloc(n)}
}

func alloc(n int) [][]bool {
	backing := make([]bool, n*n)
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}
	return cells
}

// Len returns the number of rows (and columns).
func (m *Matrix) Len() int { return len(m.cells) }

func (m *Matrix) inRange(i int) bool { return i >= 0 && i < len(m.cells) }

func (m *Matrix) checkEndpoints(src, dst int) error {
	if !m.inRange(src) {
		return errors.New(errors.ErrCodeEndpointNotFound, "source index %d out of range [0,%d)", src, len(m.cells))
	}
	if !m.inRange(dst) {
		return errors.New(errors.ErrCodeEndpointNotFound, "destination index %d out of range [0,%d)", dst, len(m.cells))
	}
	return nil
}

// Has reports whether src links to dst. Out-of-range indices report false.
func (m *Matrix) Has(src, dst int) bool {
	return m.inRange(src) && m.inRange(dst) && m.cells[src][dst]
}

// Add sets cell (src, dst). It fails with DUPLICATE_LINK, leaving the
// matrix unchanged, when the cell is already set.
func (m *Matrix) Add(src, dst int) error {
	if err := m.checkEndpoints(src, dst); err != nil {
		return err
	}
	if m.cells[src][dst] {
		return errors.New(errors.ErrCodeDuplicateLink, "link %d -> %d already exists", src, dst)
	}
	m.cells[src][dst] = true
	return nil
}

// Remove clears cell (src, dst). Clearing an unset cell is a no-op.
func (m *Matrix) Remove(src, dst int) error {
	if err := m.checkEndpoints(src, dst); err != nil {
		return err
	}
	m.cells[src][dst] = false
	return nil
}

// Grow appends one empty row and column.
func (m *Matrix) Grow() {
	n := len(m.cells)
	next := alloc(n + 1)
	for i, row := range m.cells {
		copy(next[i], row)
	}
	m.cells = next
}

// Compact deletes row and column removed, shifting every higher index down
// by one in both dimensions. The result is assembled in a new buffer and
// swapped in at the end; the old cells are only ever read.
func (m *Matrix) Compact(removed int) error {
	if !m.inRange(removed) {
		return errors.New(errors.ErrCodeEndpointNotFound, "index %d out of range [0,%d)", removed, len(m.cells))
	}
	m.cells = m.compacted(removed)
	return nil
}

func (m *Matrix) compacted(removed int) [][]bool {
	n := len(m.cells)
	next := alloc(n - 1)
	for i := 0; i < n; i++ {
		if i == removed {
			continue
		}
		ni := shift(i, removed)
		for j := 0; j < n; j++ {
			if j == removed {
				continue
			}
			next[ni][shift(j, removed)] = m.cells[i][j]
		}
	}
	return next
}

// shift maps an index from before a removal to after it.
func shift(i, removed int) int {
	if i > removed {
		return i - 1
	}
	return i
}

// InDegree counts the rows with a link into column dst.
func (m *Matrix) InDegree(dst int) int {
	if !m.inRange(dst) {
		return 0
	}
	count := 0
	for _, row := range m.cells {
		if row[dst] {
			count++
		}
	}
	return count
}

// Outgoing returns the destination indices of src in ascending order.
func (m *Matrix) Outgoing(src int) []int {
	if !m.inRange(src) {
		return nil
	}
	var out []int
	for j, set := range m.cells[src] {
		if set {
			out = append(out, j)
		}
	}
	return out
}

// EdgeCount returns the number of set cells.
func (m *Matrix) EdgeCount() int {
	count := 0
	for _, row := range m.cells {
		for _, set := range row {
			if set {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(len(m.cells))
	for i, row := range m.cells {
		copy(c.cells[i], row)
	}
	return c
}
