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

package terminal

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack = iota
	colRed
	colGreen
	colYellow
	colBlue
	colMagenta
	colCyan
	colWhite
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

var colors = map[string]int{
	"black":   colBlack,
	"red":     colRed,
	"green":   colGreen,
	"yellow":  colYellow,
	"blue":    colBlue,
	"magenta": colMagenta,
	"cyan":    colCyan,
	"white":   colWhite,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	for name := range colors {
		Pens[name], _ = PenBuild(name, true)
		DimPens[name], _ = PenBuild(name, false)
	}
}

// PenBuild creates the ANSI sequence for the named foreground color.
func PenBuild(pen string, bright bool) (string, error) {
	col, ok := colors[strings.ToLower(pen)]
	if !ok {
		return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
	}

	target := targetPen
	if bright {
		target = targetBrightPen
	}

	return fmt.Sprintf("\033[%d%dm", target, col), nil
}
