package tensor

import (
	"fmt"
	"io"
)

// ReadRaw fills t with exactly BytesNum() bytes from r.
// The bytes are copied as-is: no header, no endianness conversion.
// A short read returns io.ErrUnexpectedEOF (or io.EOF if r was empty)
// and may leave t partially written.
func ReadRaw[T Float](r io.Reader, t *Tensor[T]) error {
	if _, err := io.ReadFull(r, t.Bytes()); err != nil {
		return fmt.Errorf("read %d bytes into %s: %w", t.BytesNum(), t, err)
	}
	return nil
}

// WriteRaw writes t's memory to w as-is.
func WriteRaw[T Float](w io.Writer, t *Tensor[T]) error {
	if _, err := w.Write(t.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", t, err)
	}
	return nil
}
