package health

import (
	"context"
	"time"
)

type CheckResult struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type Checker interface {
	Check(ctx context.Context) CheckResult
}

// ProbeRunner drives the readiness probe. Each checker runs under its own
// timeout so one hung dependency cannot stall the whole probe.
type ProbeRunner struct {
	checkers  []Checker
	timeout   time.Duration
	startedAt time.Time
}

// NewProbeRunner drops nil checkers so optional dependencies (redis is not
// required) can be passed unconditionally.
func NewProbeRunner(timeout time.Duration, checkers ...Checker) *ProbeRunner {
	if timeout <= 0 {
		timeout = time.Second
	}
	kept := make([]Checker, 0, len(checkers))
	for _, c := range checkers {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &ProbeRunner{checkers: kept, timeout: timeout, startedAt: time.Now()}
}

func (r *ProbeRunner) Ready(ctx context.Context) (bool, []CheckResult) {
	if r == nil {
		return true, nil
	}
	results := make([]CheckResult, 0, len(r.checkers))
	ready := true
	for _, c := range r.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
		res := c.Check(checkCtx)
		cancel()
		results = append(results, res)
		if !res.Healthy {
			ready = false
		}
	}
	return ready, results
}
