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
	"strconv"
	"strings"

	"github.com/jetsetilly/romcheat/curated"
)

// Platform selects the decoding scheme used for every code in a run.
type Platform int

// List of valid Platform values. The numeric values are the mode numbers
// accepted on the command line.
const (
	GameBoyFamily Platform = iota + 1
	GenesisMegaDrive
	Nintendo
	SuperNintendo
	PCEngine
)

// Platforms lists every Platform in mode number order.
var Platforms = []Platform{GameBoyFamily, GenesisMegaDrive, Nintendo, SuperNintendo, PCEngine}

func (p Platform) String() string {
	switch p {
	case GameBoyFamily:
		return "Game Boy / Game Gear / Master System"
	case GenesisMegaDrive:
		return "Genesis / Mega Drive"
	case Nintendo:
		return "Nintendo"
	case SuperNintendo:
		return "Super Nintendo"
	case PCEngine:
		return "PC Engine"
	}
	return "unknown platform"
}

// Valid returns false if the Platform is not one of the defined values.
func (p Platform) Valid() bool {
	return p >= GameBoyFamily && p <= PCEngine
}

// ParsePlatform converts a mode number or platform name to a Platform. Names
// are not case sensitive.
func ParsePlatform(s string) (Platform, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		p := Platform(n)
		if !p.Valid() {
			return 0, curated.Errorf(UnknownPlatform, s)
		}
		return p, nil
	}

	switch s {
	case "GB", "GBC", "GAMEBOY", "GG", "GAMEGEAR", "SMS", "MASTERSYSTEM":
		return GameBoyFamily, nil
	case "GENESIS", "MD", "MEGADRIVE":
		return GenesisMegaDrive, nil
	case "NES", "NINTENDO", "FAMICOM":
		return Nintendo, nil
	case "SNES", "SUPERNINTENDO", "SFC":
		return SuperNintendo, nil
	case "PCE", "PCENGINE", "TG16":
		return PCEngine, nil
	}

	return 0, curated.Errorf(UnknownPlatform, s)
}
