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
	"os"

	"github.com/jetsetilly/romcheat/curated"
	"github.com/jetsetilly/romcheat/logger"
)

// FileClosed is returned by ReadAt() and WriteAt() after Close() has been
// called.
const FileClosed = "romimage: file is closed"

// File is an image stored in a file on disk.
type File struct {
	f    *os.File
	size int64
}

// Create a new file containing the data and leave it open for patching. An
// existing file with the same name is truncated.
func Create(filename string, data []byte) (*File, error) {
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, curated.Errorf("romimage: %v", err)
	}

	_, err = f.Write(data)
	if err != nil {
		f.Close()
		return nil, curated.Errorf("romimage: %v", err)
	}

	logger.Logf(logger.Allow, "romimage", "created %s (%d bytes)", filename, len(data))

	return &File{f: f, size: int64(len(data))}, nil
}

// ReadAt implements the io.ReaderAt interface.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.f == nil {
		return 0, curated.Errorf(FileClosed)
	}
	return f.f.ReadAt(p, off)
}

// WriteAt implements the io.WriterAt interface. Writing beyond the end of the
// file is an error.
func (f *File) WriteAt(p []byte, off int64) (int, error) {
	if f.f == nil {
		return 0, curated.Errorf(FileClosed)
	}
	if off < 0 || off+int64(len(p)) > f.size {
		return 0, curated.Errorf("romimage: write out of range (%d)", off)
	}
	return f.f.WriteAt(p, off)
}

// Size returns the size of the file when it was created.
func (f *File) Size() int64 {
	return f.size
}

// Writable returns false if the file has been closed.
func (f *File) Writable() bool {
	return f.f != nil
}

// Close the file after flushing to disk.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	defer func() {
		f.f = nil
	}()

	if err := f.f.Sync(); err != nil {
		f.f.Close()
		return curated.Errorf("romimage: %v", err)
	}
	if err := f.f.Close(); err != nil {
		return curated.Errorf("romimage: %v", err)
	}
	return nil
}
