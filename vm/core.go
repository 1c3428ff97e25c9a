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

import (
	"math"

	"github.com/pkg/errors"

	"github.com/db47h/redcode/redcode"
)

const (
	defaultCoreSize     = 8000
	defaultMaxProcesses = 8000
	defaultMaxCycles    = 80000
)

// Option configures a Core at construction time.
type Option func(*Core) error

// CoreSize sets the number of instruction cells in the core. It must be
// positive; the platform-maximum int is rejected since it leaves no room
// for canonical wraparound arithmetic.
func CoreSize(n int) Option {
	return func(c *Core) error {
		if n <= 0 {
			return errors.Errorf("vm: core size must be positive, got %d", n)
		}
		if n == math.MaxInt {
			return errors.Errorf("vm: core size %d is too large", n)
		}
		c.coreSize = n
		return nil
	}
}

// MaxProcesses caps the total number of live tasks across all warriors.
// Pushes beyond this cap (from SPL) are silently dropped.
func MaxProcesses(n int) Option {
	return func(c *Core) error {
		if n <= 0 {
			return errors.Errorf("vm: max processes must be positive, got %d", n)
		}
		c.maxProcesses = n
		return nil
	}
}

// MaxCycles caps the number of steps Run will execute before stopping with
// OutcomeStepLimit.
func MaxCycles(n int) Option {
	return func(c *Core) error {
		if n <= 0 {
			return errors.Errorf("vm: max cycles must be positive, got %d", n)
		}
		c.maxCycles = n
		return nil
	}
}

// warriorState is one loaded warrior's scheduling state: its task queue and
// whether it still has any live task.
type warriorState struct {
	name  string
	queue processQueue
	alive bool
}

// Core is a MARS simulation: a cyclic instruction memory shared by every
// loaded warrior, plus one process queue per warrior, stepped round-robin.
type Core struct {
	Memory       Memory
	coreSize     int
	maxProcesses int
	maxCycles    int
	warriors     []*warriorState
	turn         int
	cycles       int
}

// New builds a Core with the given options applied over the conventional
// pMARS contest defaults (core size 8000, max processes 8000, max cycles
// 80000).
func New(opts ...Option) (*Core, error) {
	c := &Core{
		coreSize:     defaultCoreSize,
		maxProcesses: defaultMaxProcesses,
		maxCycles:    defaultMaxCycles,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.Memory = NewMemory(c.coreSize)
	return c, nil
}

func (c *Core) wrap(v int) int {
	return c.Memory.wrap(v)
}

// LoadWarrior copies w's instructions into the core starting at address at
// (wrapping as necessary) and enqueues its first task at the program's
// origin. It fails if the program is longer than the core.
func (c *Core) LoadWarrior(name string, w redcode.Program, at int) error {
	if len(w.Instructions) > c.coreSize {
		return errors.Errorf("vm: warrior %q has %d instructions, exceeds core size %d", name, len(w.Instructions), c.coreSize)
	}
	if w.Origin < 0 || w.Origin >= len(w.Instructions) && len(w.Instructions) > 0 {
		return errors.Errorf("vm: warrior %q origin %d out of range", name, w.Origin)
	}
	start := c.Memory.LoadProgram(w, at)
	ws := &warriorState{name: name, alive: true}
	ws.queue.pushBack(start)
	c.warriors = append(c.warriors, ws)
	return nil
}

// Outcome classifies what happened on a single Step.
type Outcome int

// Step outcomes.
const (
	// OutcomeRunning means a task executed and the simulation can continue.
	OutcomeRunning Outcome = iota
	// OutcomeTerminated means the task that ran hit DAT or a division by
	// zero and was removed from its warrior's queue.
	OutcomeTerminated
	// OutcomeNoProcesses means no warrior has a live task left.
	OutcomeNoProcesses
	// OutcomeStepLimit means Run (or Step) reached MaxCycles.
	OutcomeStepLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeTerminated:
		return "terminated"
	case OutcomeNoProcesses:
		return "no processes remaining"
	case OutcomeStepLimit:
		return "step limit reached"
	default:
		return "unknown"
	}
}

// StepResult reports which warrior's task ran (if any) and what happened.
type StepResult struct {
	Warrior string
	Outcome Outcome
}

// Step executes exactly one instruction for the next warrior in
// round-robin turn order. If every warrior's queue is empty, it returns
// OutcomeNoProcesses without touching memory.
func (c *Core) Step() (StepResult, error) {
	if c.cycles >= c.maxCycles {
		return StepResult{Outcome: OutcomeStepLimit}, nil
	}
	n := len(c.warriors)
	for i := 0; i < n; i++ {
		idx := (c.turn + i) % n
		w := c.warriors[idx]
		if !w.alive || w.queue.empty() {
			continue
		}
		c.turn = (idx + 1) % n
		pc := w.queue.popFront()
		out, err := c.execute(pc)
		if err != nil {
			return StepResult{Warrior: w.name}, err
		}
		c.cycles++
		if out.alive {
			w.queue.pushBack(out.nextPC)
		}
		if out.spawned {
			total := 0
			for _, ow := range c.warriors {
				total += ow.queue.len()
			}
			if total < c.maxProcesses {
				w.queue.pushBack(out.spawnPC)
			}
		}
		if w.queue.empty() {
			w.alive = false
		}
		if !out.alive {
			return StepResult{Warrior: w.name, Outcome: OutcomeTerminated}, nil
		}
		return StepResult{Warrior: w.name, Outcome: OutcomeRunning}, nil
	}
	return StepResult{Outcome: OutcomeNoProcesses}, nil
}

// Run repeats Step until no warrior has a live task left or MaxCycles is
// reached, returning the StepResult that ended the run.
func (c *Core) Run() (StepResult, error) {
	for {
		res, err := c.Step()
		if err != nil {
			return res, err
		}
		switch res.Outcome {
		case OutcomeNoProcesses, OutcomeStepLimit:
			return res, nil
		}
	}
}

// Cycles returns the number of steps executed so far.
func (c *Core) Cycles() int {
	return c.cycles
}

// Alive reports whether the named warrior still has a live task queued.
func (c *Core) Alive(name string) bool {
	for _, w := range c.warriors {
		if w.name == name {
			return w.alive
		}
	}
	return false
}
