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

// Package offset implements modular address arithmetic for a cyclic core
// of a fixed size. All arithmetic wraps using Euclidean (non-negative)
// remainder, so an Offset is always in canonical range [0, coreSize).
package offset

import (
	"fmt"
	"math"
)

// Offset is a value modulo a fixed core size. The zero value is not usable;
// always construct an Offset with New.
type Offset struct {
	value    int
	coreSize int
}

// New returns an Offset holding value mod coreSize, normalised to the
// canonical non-negative range. A coreSize of 0 or a negative size is a
// programmer error and panics, as does the platform-maximum int, which
// cannot represent a canonical wraparound range.
func New(value, coreSize int) Offset {
	if coreSize <= 0 || coreSize == math.MaxInt {
		panic(fmt.Sprintf("offset: invalid core size %d", coreSize))
	}
	return Offset{value: euclidMod(value, coreSize), coreSize: coreSize}
}

func euclidMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Value returns the canonical, non-negative value of o.
func (o Offset) Value() int { return o.value }

// CoreSize returns the core size o was constructed with.
func (o Offset) CoreSize() int { return o.coreSize }

// Int returns the value as a plain int, identical to Value. Provided for
// call sites that read more naturally without the Value name.
func (o Offset) Int() int { return o.value }

func (o Offset) checkSize(p Offset) {
	if o.coreSize != p.coreSize {
		panic(fmt.Sprintf("offset: core size mismatch %d != %d", o.coreSize, p.coreSize))
	}
}

// SetValue returns a copy of o with its value replaced by v, normalised
// modulo o.CoreSize().
func (o Offset) SetValue(v int) Offset {
	return Offset{value: euclidMod(v, o.coreSize), coreSize: o.coreSize}
}

// Add returns o+p. Both operands must share the same core size.
func (o Offset) Add(p Offset) Offset {
	o.checkSize(p)
	return o.SetValue(o.value + p.value)
}

// AddInt returns o+n for a signed integer n.
func (o Offset) AddInt(n int) Offset {
	return o.SetValue(o.value + n)
}

// Sub returns o-p. Both operands must share the same core size.
func (o Offset) Sub(p Offset) Offset {
	o.checkSize(p)
	return o.SetValue(o.value - p.value)
}

// SubInt returns o-n for a signed integer n.
func (o Offset) SubInt(n int) Offset {
	return o.SetValue(o.value - n)
}

// Mul returns o*p. Both operands must share the same core size.
func (o Offset) Mul(p Offset) Offset {
	o.checkSize(p)
	return o.SetValue(o.value * p.value)
}

// MulInt returns o*n for a signed integer n.
func (o Offset) MulInt(n int) Offset {
	return o.SetValue(o.value * n)
}

// Div returns o/p using truncating integer division on the canonical
// (non-negative) values, then re-wraps the result. p must be non-zero.
func (o Offset) Div(p Offset) Offset {
	o.checkSize(p)
	return o.SetValue(o.value / p.value)
}

// DivInt returns o/n for a signed integer n. n must be non-zero.
func (o Offset) DivInt(n int) Offset {
	return o.SetValue(o.value / n)
}

// Mod returns o%p on the canonical values. p must be non-zero.
func (o Offset) Mod(p Offset) Offset {
	o.checkSize(p)
	return o.SetValue(o.value % p.value)
}

// ModInt returns o%n for a signed integer n. n must be non-zero.
func (o Offset) ModInt(n int) Offset {
	return o.SetValue(o.value % n)
}

// Equal reports whether o and p have the same canonical value and core size.
func (o Offset) Equal(p Offset) bool {
	return o.coreSize == p.coreSize && o.value == p.value
}

func (o Offset) String() string {
	return fmt.Sprintf("%d", o.value)
}
