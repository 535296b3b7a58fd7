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

// Log is the list of patches that have been applied to an image. The most
// recently applied patch is first in the list.
type Log []Patch

// String returns the log with one line per patch:
//
//	CODE - OFFSET:COMPARE:DATA
//
// The COMPARE field is only present for conditional patches. All values are
// hexadecimal.
func (l Log) String() string {
	s := strings.Builder{}
	for i, p := range l {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("  %s - %s", p.Code, p))
	}
	return s.String()
}

// prepend patch to log
func (l Log) add(p Patch) Log {
	return append(Log{p}, l...)
}
