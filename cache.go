// cache.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the process-wide, per-tolerance LazyTable
// registry: a lazily populated map guarded by a mutex.

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

import "sync"

var (
	processCacheMu     sync.Mutex
	processCacheTables = map[int]*LazyTable{}
)

// lazyTableFor returns the process-wide LazyTable for tolerance n,
// creating it on first use. The cache never invalidates entries, so
// sharing it across concurrent queries of the same n is always safe.
func lazyTableFor(n int) *LazyTable {
	processCacheMu.Lock()
	defer processCacheMu.Unlock()
	t, ok := processCacheTables[n]
	if !ok {
		t = newLazyTable(n)
		processCacheTables[n] = t
	}
	return t
}
