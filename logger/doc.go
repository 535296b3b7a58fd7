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

// Package logger is the diagnostic log for the application. It is not the
// record of what a patch run changed; that is kept by the cheats package and
// delivered to the caller.
//
// Entries are made with a tag and a detail. The tag is normally the name of
// the package making the entry:
//
//	logger.Logf(logger.Allow, "romimage", "loaded %s (%d bytes)", name, len(data))
//
// The detail can be a string, an error, a fmt.Stringer or any other value that
// can be printed with the %v verb.
//
// A Permission value controls whether the entry is made at all. The Allow
// value always permits logging. Types can implement the Permission interface
// to gate their own log entries.
//
// Entries with the same tag and detail as the previous entry are not
// repeated. The entry is marked instead.
package logger
