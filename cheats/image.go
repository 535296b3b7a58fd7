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

package cheats

import (
	"io"

	"github.com/jetsetilly/romcheat/curated"
)

// Image is the ROM data being patched. The size of an Image never changes.
//
// An Image may also implement a Writable() bool function. If it does and the
// function returns false then the Patcher will refuse to run.
type Image interface {
	io.ReaderAt
	io.WriterAt
	Size() int64
}

type writable interface {
	Writable() bool
}

// inRange returns true if offset addresses a byte inside the image.
func inRange(img Image, offset int) bool {
	return offset >= 0 && int64(offset) < img.Size()
}

// peek returns the byte at offset. zero is returned for offsets outside the
// image.
func peek(img Image, offset int) (uint8, error) {
	if !inRange(img, offset) {
		return 0, nil
	}
	var b [1]byte
	if _, err := img.ReadAt(b[:], int64(offset)); err != nil {
		return 0, curated.Errorf(ImageError, err)
	}
	return b[0], nil
}

// poke writes one byte at offset. the offset must be in range.
func poke(img Image, offset int, data uint8) error {
	if _, err := img.WriteAt([]byte{data}, int64(offset)); err != nil {
		return curated.Errorf(ImageError, err)
	}
	return nil
}

// hasHeader returns true if the image size suggests a copier or loader header.
// headerless images are always a multiple of 1KB.
func hasHeader(img Image) bool {
	return img.Size()%1024 != 0
}
