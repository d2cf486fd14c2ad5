// Package sim implements the pursuit-evasion update rule: hunters steer
// toward the prey while repelling each other, the prey flees its nearest
// hunter, and the run ends once any hunter closes within the safe distance.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"prowl/geom"
)

// Role distinguishes the two kinds of agents.
type Role uint8

const (
	Hunter Role = iota
	Prey
)

func (r Role) String() string {
	if r == Prey {
		return "prey"
	}
	return "hunter"
}

// Agent is a point agent with a unit-length heading. The heading is the
// zero vector when the agent has nowhere to go (coincident positions).
type Agent struct {
	Pos     geom.Vec
	Heading geom.Vec
	Role    Role
}

// Hunter count bounds mirror the slider range.
const (
	MinHunters = 1
	MaxHunters = 5
)

// Params holds everything that shapes a run. The zero value is not usable;
// start from DefaultParams.
type Params struct {
	Hunters      int
	SafeDistance float64

	// Tuning constants. Hunters move slightly faster than the prey so a
	// capture is always reachable.
	HunterStep      float64
	PreyStep        float64
	Repulsion       float64
	CollisionRadius float64

	// AreaSize is the side length of the square agents spawn in. Agents
	// may leave it afterwards; positions are never clamped.
	AreaSize float64

	// Seed selects the spawn positions. Zero means time-seeded.
	Seed int64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Hunters:         3,
		SafeDistance:    1.0,
		HunterStep:      0.05,
		PreyStep:        0.04,
		Repulsion:       0.1,
		CollisionRadius: 1.0,
		AreaSize:        10,
	}
}

// Normalized returns p with the hunter count clamped into
// [MinHunters, MaxHunters] and non-positive tuning fields replaced by
// defaults.
func (p Params) Normalized() Params {
	def := DefaultParams()
	if p.Hunters < MinHunters {
		p.Hunters = MinHunters
	}
	if p.Hunters > MaxHunters {
		p.Hunters = MaxHunters
	}
	if p.SafeDistance <= 0 {
		p.SafeDistance = def.SafeDistance
	}
	if p.HunterStep <= 0 {
		p.HunterStep = def.HunterStep
	}
	if p.PreyStep <= 0 {
		p.PreyStep = def.PreyStep
	}
	if p.Repulsion < 0 {
		p.Repulsion = def.Repulsion
	}
	if p.CollisionRadius <= 0 {
		p.CollisionRadius = def.CollisionRadius
	}
	if p.AreaSize <= 0 {
		p.AreaSize = def.AreaSize
	}
	return p
}

// World is the full simulation state. It is not safe for concurrent use;
// all mutation happens from the host's single tick callback.
type World struct {
	params  Params
	rng     *rand.Rand
	hunters []Agent
	prey    Agent
	tick    uint64
	done    bool
}

// New creates a world with randomly spawned agents.
func New(p Params) *World {
	p = p.Normalized()
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := &World{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
	}
	w.spawn()
	return w
}

// spawn places the prey and p.Hunters hunters uniformly in the spawn area
// and resets the run.
func (w *World) spawn() {
	a := w.params.AreaSize
	w.hunters = make([]Agent, w.params.Hunters)
	for i := range w.hunters {
		w.hunters[i] = Agent{
			Pos:  geom.Vec{X: w.rng.Float64() * a, Y: w.rng.Float64() * a},
			Role: Hunter,
		}
	}
	w.prey = Agent{
		Pos:  geom.Vec{X: w.rng.Float64() * a, Y: w.rng.Float64() * a},
		Role: Prey,
	}
	w.tick = 0
	w.done = false
}

// Reset respawns all agents with the current parameters.
func (w *World) Reset() { w.spawn() }

// Place overrides spawn positions for a scripted scenario. The number of
// hunter positions must match the configured hunter count.
func (w *World) Place(prey geom.Vec, hunters ...geom.Vec) error {
	if len(hunters) != w.params.Hunters {
		return fmt.Errorf("place: got %d hunter positions, want %d", len(hunters), w.params.Hunters)
	}
	for i, pos := range hunters {
		w.hunters[i] = Agent{Pos: pos, Role: Hunter}
	}
	w.prey = Agent{Pos: prey, Role: Prey}
	w.tick = 0
	w.done = false
	return nil
}

// SetHunters changes the hunter count and respawns, mirroring the slider's
// reset-on-change semantics. Out-of-range values are clamped.
func (w *World) SetHunters(n int) {
	if n < MinHunters {
		n = MinHunters
	}
	if n > MaxHunters {
		n = MaxHunters
	}
	if n == w.params.Hunters {
		return
	}
	w.params.Hunters = n
	w.spawn()
}

// SetSafeDistance updates the capture threshold without a respawn.
// Non-positive values are ignored.
func (w *World) SetSafeDistance(d float64) {
	if d <= 0 {
		return
	}
	w.params.SafeDistance = d
}

// Step advances the world one tick and reports whether the prey has been
// caught. Once done, further calls are no-ops that keep returning true.
func (w *World) Step() bool {
	if w.done {
		return true
	}
	w.tick++

	w.stepPrey()
	w.stepHunters()

	w.done = w.NearestHunterDistance() <= w.params.SafeDistance
	return w.done
}

func (w *World) stepPrey() {
	nearest := w.nearestHunter()
	away := w.prey.Pos.Sub(w.hunters[nearest].Pos).Normalize()
	w.prey.Heading = away
	w.prey.Pos = w.prey.Pos.Add(away.Scale(w.params.PreyStep))
}

func (w *World) stepHunters() {
	cr := w.params.CollisionRadius
	// Steering reads the pre-move positions of the other hunters; the
	// snapshot keeps the outcome independent of iteration order.
	old := make([]geom.Vec, len(w.hunters))
	for i := range w.hunters {
		old[i] = w.hunters[i].Pos
	}
	for i := range w.hunters {
		steer := w.prey.Pos.Sub(old[i]).Normalize()
		for j := range old {
			if j == i {
				continue
			}
			d := old[i].Sub(old[j])
			dist := d.Len()
			if dist >= cr || dist == 0 {
				continue
			}
			// Linear falloff: full repulsion at contact, zero at the
			// collision radius.
			strength := w.params.Repulsion * (cr - dist) / cr
			steer = steer.Add(d.Normalize().Scale(strength))
		}
		heading := steer.Normalize()
		w.hunters[i].Heading = heading
		w.hunters[i].Pos = w.hunters[i].Pos.Add(heading.Scale(w.params.HunterStep))
	}
}

func (w *World) nearestHunter() int {
	best := 0
	bestD2 := w.prey.Pos.Sub(w.hunters[0].Pos).Len2()
	for i := 1; i < len(w.hunters); i++ {
		d2 := w.prey.Pos.Sub(w.hunters[i].Pos).Len2()
		if d2 < bestD2 {
			best, bestD2 = i, d2
		}
	}
	return best
}

// NearestHunterDistance returns the distance from the prey to its closest
// hunter.
func (w *World) NearestHunterDistance() float64 {
	return geom.Dist(w.prey.Pos, w.hunters[w.nearestHunter()].Pos)
}

// Hunters returns the hunter agents. The slice is live state; callers must
// not retain it across ticks.
func (w *World) Hunters() []Agent { return w.hunters }

// Prey returns the prey agent.
func (w *World) Prey() Agent { return w.prey }

// Params returns the current parameters.
func (w *World) Params() Params { return w.params }

// Tick returns the number of completed ticks of the current run.
func (w *World) Tick() uint64 { return w.tick }

// Done reports whether the prey has been caught.
func (w *World) Done() bool { return w.done }
