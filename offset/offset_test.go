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

package offset_test

import (
	"testing"

	"github.com/db47h/redcode/offset"
)

func TestNewCanonical(t *testing.T) {
	cases := []struct {
		v, n, want int
	}{
		{0, 8000, 0},
		{7999, 8000, 7999},
		{8000, 8000, 0},
		{-1, 8000, 7999},
		{-8000, 8000, 0},
		{-8001, 8000, 7999},
		{16001, 8000, 1},
	}
	for _, c := range cases {
		o := offset.New(c.v, c.n)
		if o.Value() != c.want {
			t.Errorf("New(%d, %d).Value() = %d, want %d", c.v, c.n, o.Value(), c.want)
		}
		if o.Value() < 0 || o.Value() >= o.CoreSize() {
			t.Errorf("New(%d, %d) out of canonical range: %d", c.v, c.n, o.Value())
		}
	}
}

func TestInvalidCoreSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(0, %d) did not panic", n)
				}
			}()
			offset.New(0, n)
		}()
	}
}

func TestAddWraps(t *testing.T) {
	const n = 8000
	o := offset.New(7998, n)
	cases := []struct {
		k    int
		want int
	}{
		{1, 7999},
		{2, 0},
		{3, 1},
		{-7998, 0},
		{-7999, 7999},
	}
	for _, c := range cases {
		got := o.AddInt(c.k).Value()
		if got != c.want {
			t.Errorf("(%d).AddInt(%d) = %d, want %d", o.Value(), c.k, got, c.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	const n = 100
	a := offset.New(7, n)
	b := offset.New(3, n)
	if got := a.Add(b).Value(); got != 10 {
		t.Errorf("Add: got %d want 10", got)
	}
	if got := a.Sub(b).Value(); got != 4 {
		t.Errorf("Sub: got %d want 4", got)
	}
	if got := a.Mul(b).Value(); got != 21 {
		t.Errorf("Mul: got %d want 21", got)
	}
	if got := a.Div(b).Value(); got != 2 {
		t.Errorf("Div: got %d want 2", got)
	}
	if got := a.Mod(b).Value(); got != 1 {
		t.Errorf("Mod: got %d want 1", got)
	}
}

func TestCoreSizeMismatchPanics(t *testing.T) {
	a := offset.New(1, 10)
	b := offset.New(1, 20)
	defer func() {
		if recover() == nil {
			t.Error("Add across mismatched core sizes did not panic")
		}
	}()
	a.Add(b)
}

func TestEqual(t *testing.T) {
	a := offset.New(5, 100)
	b := offset.New(105, 100)
	if !a.Equal(b) {
		t.Error("expected 5 == 105 mod 100")
	}
	c := offset.New(5, 50)
	if a.Equal(c) {
		t.Error("expected offsets with different core sizes to compare unequal")
	}
}
