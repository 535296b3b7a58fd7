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

// Package romimage loads ROM images and provides the two implementations of
// the cheats.Image interface: Buffer, which holds the image in memory, and
// File, which patches a file on disk.
//
// Images can be loaded from a plain file, from a file inside a zip archive
// or from a http/https URL. A file inside an archive is named by treating the
// archive as a directory:
//
//	roms/collection.zip/games/game.gb
//
// An archive containing exactly one file can be named directly.
package romimage
