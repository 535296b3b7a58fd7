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

// Game Genie codes for the Game Boy, Game Gear and Master System are plain
// hexadecimal in two lengths:
//
//	DDAAA-A       (6 digits)
//	DDAAA-ACXC    (9 digits)
//
// the D digits are the replacement data. the address is formed from the A
// digits with the last digit moved to the front and inverted. in the long form
// the two C digits form the comparison value, rotated and scrambled with
// 0xba. the X digit is not used.
func decodeGameBoy(code string, clean string, img Image) (Form, []Patch, error) {
	var form Form

	switch len(clean) {
	case 6:
		form = GameBoyShort
	case 9:
		form = GameBoyLong
	default:
		return form, nil, curated.Errorf(UnrecognisedCode, code, GameBoyFamily)
	}

	d, err := hexAlphabet.decode(clean)
	if err != nil {
		return form, nil, err
	}

	// digits are numbered from 1
	digit := func(n int) bitfield {
		return d.field((n-1)*hexAlphabet.width+1, hexAlphabet.width)
	}

	p := Patch{
		Code:   code,
		Offset: join(bitfield{v: digit(6).v ^ 0x0f, width: 4}, digit(3), digit(4), digit(5)).int(),
		Data:   []uint8{join(digit(1), digit(2)).uint8()},
	}

	if form == GameBoyLong {
		c := join(digit(7), digit(9))
		p.Conditional = true
		p.Compare = join(c.right(2), c.left(6)).uint8() ^ 0xba
	}

	return form, mirror(img, p), nil
}
