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

// Genesis codes are eight symbols of five bits each. the forty bits are
// rearranged into a 24 bit address and a 16 bit data word. the data word is
// written to the image unconditionally, most significant byte first.
func decodeGenesis(code string, clean string) (Form, []Patch, error) {
	if len(clean) != 8 {
		return Genesis, nil, curated.Errorf(UnrecognisedCode, code, GenesisMegaDrive)
	}

	b, err := genesisAlphabet.decode(clean)
	if err != nil {
		return Genesis, nil, err
	}

	s := join(b.field(17, 8), b.field(9, 8), b.right(8), b.field(30, 3), b.field(25, 5), b.left(8))

	p := Patch{
		Code:   code,
		Offset: s.left(24).int(),
		Data:   []uint8{s.field(25, 8).uint8(), s.right(8).uint8()},
	}

	return Genesis, []Patch{p}, nil
}
