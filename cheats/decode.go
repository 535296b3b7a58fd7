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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/romcheat/curated"
)

// Decode a single code for the platform. The image is used to decide bank
// mirroring and header adjustments but is never written to.
//
// Codes containing a colon are decoded in the raw form whatever the platform.
// An error is returned if the code is the wrong length for the platform or
// contains a symbol that is not in the platform's alphabet.
func Decode(platform Platform, code string, img Image) (Form, []Patch, error) {
	clean := Clean(code)

	if strings.Contains(clean, ":") {
		return decodeRaw(platform, code, clean, img)
	}

	switch platform {
	case GameBoyFamily:
		return decodeGameBoy(code, clean, img)
	case GenesisMegaDrive:
		return decodeGenesis(code, clean)
	case Nintendo:
		return decodeNES(code, clean, img)
	case SuperNintendo:
		return decodeSNES(code, clean, img)
	case PCEngine:
		// there is no scrambled form for the PC Engine
		return Raw, nil, curated.Errorf(UnrecognisedCode, code, platform)
	}

	return Raw, nil, curated.Errorf(UnknownPlatform, fmt.Sprintf("%d", int(platform)))
}

// the size of the header added by copier devices
const copierHeaderSize = 512

// decode raw form of ADDRESS:VV. the address is adjusted for copier headers
// for the PC Engine and, when the image looks to be headerless, for the Master
// System.
func decodeRaw(platform Platform, code string, clean string, img Image) (Form, []Patch, error) {
	n := len(clean)
	if n < 4 || clean[n-3] != ':' {
		return Raw, nil, curated.Errorf(UnrecognisedCode, code, platform)
	}

	address, err := parseHex(clean[:n-3], 32, code)
	if err != nil {
		return Raw, nil, err
	}

	data, err := parseHex(clean[n-2:], 8, code)
	if err != nil {
		return Raw, nil, err
	}

	p := Patch{
		Code:   code,
		Offset: int(address),
		Data:   []uint8{uint8(data)},
	}

	if platform == PCEngine || (platform == GameBoyFamily && !hasHeader(img)) {
		p.Offset += copierHeaderSize
	}

	return Raw, []Patch{p}, nil
}

func parseHex(s string, bitSize int, code string) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, bitSize)
	if err != nil {
		return 0, curated.Errorf(InvalidHex, s, code)
	}
	return v, nil
}
