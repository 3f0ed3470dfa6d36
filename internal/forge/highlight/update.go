package highlight

import (
	"math"

	"github.com/Faultbox/forgelight/internal/forge/objects"
)

const twoPi = 2 * math.Pi

// colorCycleSeconds is how long one radian of the color cycle lasts.
const colorCycleSeconds = 1.0

// Update rebuilds the snapshot from the current selection and advances the
// color phase. Outside implicit mode it leaves both untouched.
func (r *Renderer) Update() {
	if !r.state.implicit() {
		return
	}

	r.snapshot.Reset()

	sel, objs := r.deps.Selection, r.deps.Objects
	objs.Range(func(id objects.Index) bool {
		if r.snapshot.Full() {
			return false
		}
		if !sel.Contains(id) {
			return true
		}
		it, _ := r.snapshot.Next()
		itemFor(it, objs.Transform(id), objs.BoundingBox(id), objs.Center(id))
		return true
	})

	r.colorCounter = advancePhase(r.colorCounter, r.deps.Clock.SecondsPerTick()/colorCycleSeconds)
}

// advancePhase returns (phase + delta) wrapped into [0, 2π).
func advancePhase(phase, delta float32) float32 {
	p := math.Mod(float64(phase)+float64(delta), twoPi)
	if p < 0 {
		p += twoPi
	}
	// float32 rounding can land exactly on 2π.
	if f := float32(p); f < float32(twoPi) {
		return f
	}
	return 0
}
