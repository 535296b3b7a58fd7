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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is remembered and is what differentiates one curated error from
// another. The Is() function checks the pattern of the outermost error:
//
//	e := curated.Errorf("cheats: invalid symbol (%c)", 'Q')
//
//	if curated.Is(e, "cheats: invalid symbol (%c)") {
//		fmt.Println("true")
//	}
//
// The Has() function looks for the pattern anywhere in the error chain.
// Chains are built by passing one curated error as a value to another:
//
//	f := curated.Errorf("romcheat: %v", e)
//
//	curated.Has(f, "cheats: invalid symbol (%c)") // true
//	curated.Is(f, "cheats: invalid symbol (%c)")  // false
//
// Sentinel patterns are stored as exported const strings by the package that
// produces them.
//
// The Error() function normalises the chain so that it does not contain
// duplicate adjacent parts. Parts are separated by the sub-string ": ". This
// means a package can wrap an error with its own prefix without worrying if
// the error already carries that prefix:
//
//	romimage: romimage: file not found
//
// is printed as:
//
//	romimage: file not found
package curated
