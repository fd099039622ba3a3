package rate

import "time"

// EWMA estimates the rate as an exponential moving average of per-sample
// instantaneous rates: every new sample contributes with weight alpha and
// the previous average decays by 1-alpha. State is constant-size regardless
// of iteration length.
type EWMA struct {
	alpha  float64
	prev   time.Time
	prevN  uint64
	avg    float64
	primed bool
	seeded bool
}

var _ Estimator = (*EWMA)(nil)

// NewEWMA returns an EWMA with decay constant alpha in (0, 1]. Larger alpha
// reacts faster to throughput changes, smaller alpha smooths harder. 0.1 is
// a reasonable default.
func NewEWMA(alpha float64) *EWMA {
	if alpha <= 0 {
		panic("alpha can't be <= 0")
	}
	if alpha > 1 {
		panic("alpha can't be > 1")
	}
	return &EWMA{alpha: alpha}
}

func (e *EWMA) Observe(t time.Time, done uint64) {
	if !e.seeded {
		e.seeded = true
		e.prev = t
		e.prevN = done
		return
	}

	dt := t.Sub(e.prev).Seconds()
	if dt <= 0 {
		// No measurable time passed; the items fold into the next sample.
		return
	}

	inst := float64(done-e.prevN) / dt
	if !e.primed {
		e.avg = inst
		e.primed = true
	} else {
		e.avg = e.alpha*inst + (1-e.alpha)*e.avg
	}

	e.prev = t
	e.prevN = done
}

func (e *EWMA) Rate() float64 {
	if !e.primed {
		return 0
	}
	return e.avg
}
