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
	"strings"

	"github.com/jetsetilly/romcheat/curated"
)

// alphabet maps each symbol in a code to its index in the string. every symbol
// is worth the same number of bits.
type alphabet struct {
	symbols string
	width   int
}

var (
	hexAlphabet     = alphabet{symbols: "0123456789ABCDEF", width: 4}
	genesisAlphabet = alphabet{symbols: "ABCDEFGHJKLMNPRSTVWXYZ0123456789", width: 5}
	nesAlphabet     = alphabet{symbols: "APZLGITYEOXUKSVN", width: 4}
	snesAlphabet    = alphabet{symbols: "DF4709156BC8A23E", width: 4}
)

// decode concatenates the value of every symbol in the code into a single
// bitfield. the first symbol occupies the most significant bits.
func (a alphabet) decode(code string) (bitfield, error) {
	var b bitfield
	for _, c := range code {
		v := strings.IndexRune(a.symbols, c)
		if v < 0 {
			return bitfield{}, curated.Errorf(InvalidSymbol, c, code)
		}
		b = join(b, bitfield{v: uint64(v), width: a.width})
	}
	return b, nil
}
