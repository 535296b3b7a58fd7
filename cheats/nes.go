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

import "github.com/jetsetilly/romcheat/curated"

const (
	// size of the iNES header that precedes the ROM data in most images
	inesHeaderSize = 16

	// images this size or larger have more than one PRG bank and six symbol
	// codes are mirrored into every bank
	nesMultiBank = 49169

	// eight symbol codes address the upper PRG window
	nesUpperWindow = 0xc000
)

// NES codes are six or eight symbols of four bits each. six symbol codes
// encode a 16 bit address and replacement data. eight symbol codes also
// encode a comparison value and are always conditional.
func decodeNES(code string, clean string, img Image) (Form, []Patch, error) {
	var form Form

	switch len(clean) {
	case 6:
		form = NESShort
	case 8:
		form = NESLong
	default:
		return form, nil, curated.Errorf(UnrecognisedCode, code, Nintendo)
	}

	b, err := nesAlphabet.decode(clean)
	if err != nil {
		return form, nil, err
	}

	var p Patch

	if form == NESShort {
		s := join(b.field(9, 1), b.field(14, 4), b.field(22, 3),
			b.field(5, 1), b.field(10, 4), b.field(18, 3),
			b.field(1, 1), b.field(6, 3), b.field(21, 1), b.field(2, 3))

		p = Patch{
			Code:   code,
			Offset: s.left(16).int(),
			Data:   []uint8{s.right(8).uint8()},
		}
	} else {
		s := join(b.field(9, 1), b.field(14, 4), b.field(22, 3),
			b.field(5, 1), b.field(10, 4), b.field(18, 3),
			b.field(1, 1), b.field(6, 3), b.field(29, 1), b.field(2, 3),
			b.field(25, 1), b.field(30, 3), b.field(21, 1), b.field(26, 3))

		p = Patch{
			Code:        code,
			Offset:      s.left(16).int() - nesUpperWindow,
			Conditional: true,
			Compare:     s.right(8).uint8(),
			Data:        []uint8{s.field(17, 8).uint8()},
		}
	}

	if hasHeader(img) {
		p.Offset += inesHeaderSize
	}

	if form == NESShort && img.Size() < nesMultiBank {
		return form, []Patch{p}, nil
	}

	return form, mirror(img, p), nil
}
