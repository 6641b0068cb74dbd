package binary

// Writer accumulates a FITS buffer in memory.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends the given bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Pad appends fill bytes until the length is a multiple of alignment.
// If already aligned, nothing is written.
func (w *Writer) Pad(alignment int, fill byte) {
	if alignment <= 1 {
		return
	}
	remainder := len(w.buf) % alignment
	if remainder == 0 {
		return
	}
	for i := 0; i < alignment-remainder; i++ {
		w.buf = append(w.buf, fill)
	}
}
