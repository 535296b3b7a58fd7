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
	"strings"
)

// Form identifies the shape of a code once decoded.
type Form int

// List of valid Form values.
const (
	Raw Form = iota
	GameBoyShort
	GameBoyLong
	Genesis
	NESShort
	NESLong
	SNES
)

func (f Form) String() string {
	switch f {
	case Raw:
		return "raw"
	case GameBoyShort:
		return "game genie (6)"
	case GameBoyLong:
		return "game genie (9)"
	case Genesis:
		return "genesis game genie"
	case NESShort:
		return "nes game genie (6)"
	case NESLong:
		return "nes game genie (8)"
	case SNES:
		return "snes game genie"
	}
	return "unknown form"
}

// Patch is a single decoded modification to an image.
type Patch struct {
	// the code as supplied by the user
	Code string

	// offset into the image of the first byte of Data. the offset is never
	// adjusted to be in range. a negative offset or an offset beyond the end
	// of the image means the patch will be skipped
	Offset int

	// if Conditional is true the patch is only applied if the existing byte
	// at Offset is equal to Compare
	Conditional bool
	Compare     uint8

	// the data to write starting at Offset. one byte for every form except
	// Genesis, which writes two
	Data []uint8
}

func (p Patch) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%x:", p.Offset))
	if p.Conditional {
		s.WriteString(fmt.Sprintf("%x:", p.Compare))
	}
	if len(p.Data) == 1 {
		s.WriteString(fmt.Sprintf("%x", p.Data[0]))
	} else {
		for _, d := range p.Data {
			s.WriteString(fmt.Sprintf("%02x", d))
		}
	}
	return s.String()
}

// mirror produces one copy of the patch for every 8KB bank in the image,
// including the bank beginning at the end of the image.
func mirror(img Image, p Patch) []Patch {
	n := int(img.Size()/bankSize) + 1
	patches := make([]Patch, 0, n)
	for bank := 0; bank < n; bank++ {
		q := p
		q.Offset = p.Offset + bank*bankSize
		patches = append(patches, q)
	}
	return patches
}

// the bank size for mirrored patches.
const bankSize = 8192

// applies reports whether the patch would be applied to the image in its
// current state.
func applies(img Image, p Patch) (bool, error) {
	if !inRange(img, p.Offset) {
		return false, nil
	}

	if p.Conditional {
		v, err := peek(img, p.Offset)
		if err != nil {
			return false, err
		}
		if v != p.Compare {
			return false, nil
		}
	}

	return true, nil
}

// apply the patch to the image. returns true if the data was written.
//
// data bytes following the first are skipped if they are beyond the end of the
// image.
func apply(img Image, p Patch) (bool, error) {
	ok, err := applies(img, p)
	if err != nil || !ok {
		return false, err
	}

	for i, d := range p.Data {
		if !inRange(img, p.Offset+i) {
			break
		}
		if err := poke(img, p.Offset+i, d); err != nil {
			return false, err
		}
	}

	return true, nil
}
