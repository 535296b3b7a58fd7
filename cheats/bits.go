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

// bitfield is a fixed width string of bits stored in an integer. bit positions
// are numbered from 1 starting at the most significant end, which is how the
// scrambling schemes for every platform are described.
//
// a bitfield is at most 64 bits wide.
type bitfield struct {
	v     uint64
	width int
}

// field returns length bits starting at position pos.
func (b bitfield) field(pos int, length int) bitfield {
	shift := b.width - (pos - 1) - length
	return bitfield{
		v:     (b.v >> shift) & (1<<length - 1),
		width: length,
	}
}

// left returns the first length bits.
func (b bitfield) left(length int) bitfield {
	return b.field(1, length)
}

// right returns the last length bits.
func (b bitfield) right(length int) bitfield {
	return b.field(b.width-length+1, length)
}

// join concatenates bitfields. the first part is the most significant.
func join(parts ...bitfield) bitfield {
	var b bitfield
	for _, p := range parts {
		b.v = b.v<<p.width | p.v
		b.width += p.width
	}
	return b
}

func (b bitfield) int() int {
	return int(b.v)
}

func (b bitfield) uint8() uint8 {
	return uint8(b.v)
}
