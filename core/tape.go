package core

// Tape is the memory of a running program: a head and a row of 8-bit cells
// that grows to the right on demand. The head never goes below cell 0.
type Tape struct {
	head  int
	cells []byte
}

// NewTape creates a tape with one zero cell under the head.
func NewTape() *Tape {
	return &Tape{cells: []byte{0}}
}

// MoveRight moves the head one cell right, appending a zero cell when the
// head passes the current end.
func (t *Tape) MoveRight() {
	t.head++
	if t.head == len(t.cells) {
		t.cells = append(t.cells, 0)
	}
}

// MoveLeft moves the head one cell left. At cell 0 it does nothing.
func (t *Tape) MoveLeft() {
	if t.head > 0 {
		t.head--
	}
}

// Read returns the value under the head.
func (t *Tape) Read() byte {
	return t.cells[t.head]
}

// Write sets the value under the head.
func (t *Tape) Write(v byte) {
	t.cells[t.head] = v
}

// Increment adds one to the cell under the head, wrapping 255 to 0.
func (t *Tape) Increment() {
	t.cells[t.head]++
}

// Decrement subtracts one from the cell under the head, wrapping 0 to 255.
func (t *Tape) Decrement() {
	t.cells[t.head]--
}

// Head returns the index of the cell under the head.
func (t *Tape) Head() int {
	return t.head
}

// Len returns the number of cells allocated so far.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells returns a copy of every cell.
func (t *Tape) Cells() []byte {
	cells := make([]byte, len(t.cells))
	copy(cells, t.cells)
	return cells
}
