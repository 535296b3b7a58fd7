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

// Package cheats decodes cheat codes for cartridge based consoles and applies
// them to a ROM image.
//
// Each console family scrambles an address, an optional comparison value and
// a replacement value into a short string of symbols. The Decode() function
// reverses the scramble for the selected Platform and produces one or more
// Patch values. Codes for cartridges with 8KB banks are mirrored into every
// bank of the image and so produce one Patch per bank.
//
// Codes containing a colon are in the raw form, regardless of platform:
//
//	ADDRESS:VV
//
// where ADDRESS and VV are hexadecimal.
//
// The Patcher type runs a batch of codes against an Image, applying every
// Patch that is within the bounds of the image and whose comparison value (if
// any) matches the existing data. A Patch that is out of range or that fails
// the comparison is skipped and is not an error. The Log returned by the
// Patcher is the record of what changed.
package cheats
