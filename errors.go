// errors.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file declares the configuration-error sentinels. Invariant
// violations are not represented as errors - they panic with a
// diagnostic, since they signal a contract breach rather than a
// recoverable, caller-correctable condition.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package mueddi

import "errors"

var (
	// ErrToleranceOutOfRange is returned when n falls outside [1, MaxTolerance].
	ErrToleranceOutOfRange = errors.New("mueddi: tolerance out of range [1, 15]")
	// ErrDuplicateWord is returned when BuildDawg is given a repeated word.
	ErrDuplicateWord = errors.New("mueddi: duplicate dictionary word")
)
