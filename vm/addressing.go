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

import "github.com/db47h/redcode/redcode"

// resolveField computes the effective address f designates when read from
// an instruction at pc, applying any pre-decrement/post-increment side
// effect on the core cell the indirection passes through. Immediate fields
// resolve to pc itself: the field's own Value is what callers want, not a
// dereferenced cell.
func (c *Core) resolveField(pc int, f redcode.Field) int {
	switch f.Mode {
	case redcode.Immediate:
		return pc
	case redcode.Direct:
		return c.wrap(pc + f.Value)
	case redcode.IndirectA:
		p := c.wrap(pc + f.Value)
		return c.wrap(p + c.Memory[p].A.Value)
	case redcode.IndirectB:
		p := c.wrap(pc + f.Value)
		return c.wrap(p + c.Memory[p].B.Value)
	case redcode.PreDecIndirectA:
		p := c.wrap(pc + f.Value)
		v := c.wrap(c.Memory[p].A.Value - 1)
		c.Memory[p].A.Value = v
		return c.wrap(p + v)
	case redcode.PreDecIndirectB:
		p := c.wrap(pc + f.Value)
		v := c.wrap(c.Memory[p].B.Value - 1)
		c.Memory[p].B.Value = v
		return c.wrap(p + v)
	case redcode.PostIncIndirectA:
		p := c.wrap(pc + f.Value)
		v := c.Memory[p].A.Value
		eff := c.wrap(p + v)
		c.Memory[p].A.Value = c.wrap(v + 1)
		return eff
	case redcode.PostIncIndirectB:
		p := c.wrap(pc + f.Value)
		v := c.Memory[p].B.Value
		eff := c.wrap(p + v)
		c.Memory[p].B.Value = c.wrap(v + 1)
		return eff
	default:
		return pc
	}
}
