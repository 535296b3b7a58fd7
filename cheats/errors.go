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

// Sentinel error patterns. Test for them with curated.Is() or curated.Has().
const (
	UnknownPlatform  = "cheats: unknown platform (%s)"
	UnrecognisedCode = "cheats: unrecognised code (%s) for %v"
	InvalidSymbol    = "cheats: invalid symbol (%c) in code (%s)"
	InvalidHex       = "cheats: invalid hex value (%s) in code (%s)"
	NoImage          = "cheats: no image to patch"
	ImageNotWritable = "cheats: image is not writable"
	ImageError       = "cheats: image: %v"
)
