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
	"math/bits"

	"github.com/jetsetilly/romcheat/curated"
)

const (
	// location of the map mode byte in the cartridge header
	snesMapMode = 0xffd5

	// map mode values that indicate a HiROM cartridge
	snesHiROM     = 0x21
	snesHiROMFast = 0x31
)

// SNES codes are eight symbols, each a substitute for a hexadecimal digit. the
// first two digits are the replacement data. the remaining six are a
// scrambled 24 bit address.
//
// the address is a cartridge bus address and must be mapped to a file offset.
// for HiROM cartridges the bus address is linear. for everything else the bank
// is 32KB and bit 15 of the address is removed. finally, mirrored windows in
// the upper banks are folded back into ROM space.
func decodeSNES(code string, clean string, img Image) (Form, []Patch, error) {
	if len(clean) != 8 {
		return SNES, nil, curated.Errorf(UnrecognisedCode, code, SuperNintendo)
	}

	b, err := snesAlphabet.decode(clean)
	if err != nil {
		return SNES, nil, err
	}

	a := b.right(24)
	s := join(a.field(11, 4), a.field(19, 4), a.left(4), a.field(23, 2), a.field(9, 2), a.field(5, 4), a.field(15, 4))

	p := Patch{
		Code:   code,
		Offset: s.int(),
		Data:   []uint8{b.left(8).uint8()},
	}

	var header int
	if hasHeader(img) {
		header = copierHeaderSize
		p.Offset += header
	}

	mode, err := peek(img, snesMapMode+header)
	if err != nil {
		return SNES, nil, err
	}

	if mode != snesHiROM && mode != snesHiROMFast {
		p.Offset = removeBit15(p.Offset)
	}

	p.Offset = foldSNES(p.Offset)

	return SNES, []Patch{p}, nil
}

// removeBit15 keeps the top eight bits and the bottom fifteen bits of a 24 bit
// address. addresses wider than 24 bits keep their top eight bits.
func removeBit15(offset int) int {
	width := bits.Len(uint(offset))
	if width < 24 {
		width = 24
	}
	b := bitfield{v: uint64(offset), width: width}
	return join(b.left(8), b.right(15)).int()
}

// foldSNES maps the mirrored windows at 0x400000, 0x800000 and 0xc00000 back
// to the start of ROM.
func foldSNES(offset int) int {
	switch {
	case offset >= 0x400000 && offset <= 0x7fffff:
		return offset - 0x400000
	case offset >= 0x800000 && offset <= 0xbfffff:
		return offset - 0x800000
	case offset >= 0xc00000 && offset <= 0xffffff:
		return offset - 0xc00000
	}
	return offset
}
