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

// Package modalflag handles command lines that are divided into modes. Each
// mode has its own set of flags and a mode can select a further sub-mode.
// For example:
//
//	romcheat -mode NES CODES INPUT OUTPUT
//	romcheat DECODE -memviz codes.dot CODES INPUT
//
// The first sub-mode added with AddSubModes() is the default mode and is
// selected when the next argument is not the name of a sub-mode.
//
// Help is printed automatically when the -help flag is seen and Parse()
// returns ParseHelp to indicate that the program should stop.
package modalflag
