// This file is part of Romcheat.
//
// Romcheat is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romcheat is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romcheat.  If not, see <https://www.gnu.org/licenses/>.

package romimage

import (
	"fmt"
	"io"
)

// Buffer is an in-memory image. Buffer never changes size.
type Buffer struct {
	data     []byte
	readOnly bool
}

// NewBuffer creates a writable Buffer using the data slice. The slice is not
// copied.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewReadOnlyBuffer creates a Buffer that refuses all writes.
func NewReadOnlyBuffer(data []byte) *Buffer {
	return &Buffer{data: data, readOnly: true}
}

// ReadAt implements the io.ReaderAt interface.
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("romimage: negative offset (%d)", off)
	}
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements the io.WriterAt interface. Writing beyond the end of the
// buffer is an error.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	if b.readOnly {
		return 0, fmt.Errorf("romimage: buffer is read only")
	}
	if off < 0 || off+int64(len(p)) > int64(len(b.data)) {
		return 0, fmt.Errorf("romimage: write out of range (%d)", off)
	}
	return copy(b.data[off:], p), nil
}

// Size returns the number of bytes in the buffer.
func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

// Writable returns false if the buffer was created with NewReadOnlyBuffer().
func (b *Buffer) Writable() bool {
	return !b.readOnly
}

// Bytes returns the underlying data.
func (b *Buffer) Bytes() []byte {
	return b.data
}
