// logger.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// Logger carries opt-in trace output for automaton state construction
// and transition lookups, against the standard library's *log.Logger,
// with output discarded unless a caller (typically cmd/mueddi's -v
// flag) redirects it.

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

import (
	"io"
	"log"
)

// Logger receives trace output from Facade.Delta. Its default
// destination is io.Discard; assign a new *log.Logger (or redirect
// this one's output) to observe automaton transitions.
var Logger = log.New(io.Discard, "mueddi: ", 0)
