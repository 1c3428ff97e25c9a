// This file is part of redcode - https://github.com/db47h/redcode
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// processQueue is one warrior's FIFO of live task pointers. MARS never
// needs random access into it, only push-back, pop-front and a length
// check, so a growable slice with a head index serves as well as a ring
// buffer and is simpler to reason about.
type processQueue struct {
	pcs  []int
	head int
}

func (q *processQueue) empty() bool {
	return q.head >= len(q.pcs)
}

func (q *processQueue) len() int {
	return len(q.pcs) - q.head
}

func (q *processQueue) pushBack(pc int) {
	q.pcs = append(q.pcs, pc)
	q.compact()
}

// popFront removes and returns the oldest queued task pointer. The caller
// must check empty() first.
func (q *processQueue) popFront() int {
	pc := q.pcs[q.head]
	q.head++
	q.compact()
	return pc
}

// compact reclaims the consumed prefix once it dominates the backing
// array, so a long-running battle doesn't grow pcs without bound.
func (q *processQueue) compact() {
	if q.head > 64 && q.head*2 > len(q.pcs) {
		q.pcs = append([]int(nil), q.pcs[q.head:]...)
		q.head = 0
	}
}
