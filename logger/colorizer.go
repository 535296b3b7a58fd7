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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/romcheat/terminal"
)

// Colorizer applies basic coloring rules to text written to it. The first line
// of each write is printed normally and any following lines are tinted.
type Colorizer struct {
	out io.Writer
	pen string
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type. The pen is a color name recognised by the terminal package.
func NewColorizer(out io.Writer, pen string) Colorizer {
	c := Colorizer{out: out}
	if p, ok := terminal.DimPens[pen]; ok {
		c.pen = p
	}
	return c
}

func (c Colorizer) Write(p []byte) (n int, err error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	m, err := io.WriteString(c.out, l[0]+"\n")
	n += m
	if err != nil {
		return n, err
	}

	if len(l) == 1 {
		return len(p), nil
	}

	if c.pen != "" {
		_, err = io.WriteString(c.out, c.pen)
		if err != nil {
			return n, err
		}
		defer func() {
			_, _ = io.WriteString(c.out, terminal.NormalPen)
		}()
	}

	for _, s := range l[1:] {
		m, err := io.WriteString(c.out, s+"\n")
		n += m
		if err != nil {
			return n, err
		}
	}

	return len(p), nil
}
