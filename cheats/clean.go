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

import "strings"

// Clean normalises a code as entered by the user. Hyphens are removed, leading
// and trailing whitespace is trimmed and the result is upper cased.
func Clean(code string) string {
	return strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(code, "-", "")))
}
