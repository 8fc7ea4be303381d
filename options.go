package exact

import (
	"time"
)

// DefaultTimeout is the wall-clock budget for factorials and powers in one
// evaluation when no Timeout option is given.
const DefaultTimeout = 500 * time.Millisecond

// Option is an option for evaluation.
type Option interface {
	evalOption(config) config
}

type (
	timeoutopt time.Duration
	stepsopt   int64
	digitsopt  int
	clockopt   func() time.Time
)

// config holds the limits for one evaluation.
type config struct {
	// timeout is the wall-clock budget. Zero disables it.
	timeout time.Duration
	// steps is the maximum number of loop iterations across all factorials
	// and powers. Zero disables it.
	steps int64
	// digits is the maximum predicted number of decimal digits in the result
	// of one factorial or power. Zero disables it.
	digits int
	// now is the clock used for the wall-clock budget.
	now func() time.Time
}

func defaults() config {
	return config{timeout: DefaultTimeout, now: time.Now}
}

func newconfig(opts []Option) config {
	c := defaults()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.evalOption(c)
	}
	return c
}

// Timeout sets the wall-clock budget shared by all factorials and powers in
// an evaluation. A zero or negative duration disables the budget.
func Timeout(d time.Duration) Option {
	return timeoutopt(d)
}

func (o timeoutopt) evalOption(c config) config {
	c.timeout = time.Duration(o)
	if c.timeout < 0 {
		c.timeout = 0
	}
	return c
}

// Steps sets a deterministic budget on the total number of multiplication
// steps performed by factorials and powers in an evaluation. Exceeding it is
// reported as ComputationTimeout, the same as running out of time. Zero
// disables the budget.
func Steps(n int64) Option {
	return stepsopt(n)
}

func (o stepsopt) evalOption(c config) config {
	c.steps = int64(o)
	if c.steps < 0 {
		c.steps = 0
	}
	return c
}

// MaxDigits rejects any factorial or power whose result is predicted to have
// more than n decimal digits in its numerator or denominator, before any
// multiplication is done. Zero disables the check.
func MaxDigits(n int) Option {
	return digitsopt(n)
}

func (o digitsopt) evalOption(c config) config {
	c.digits = int(o)
	if c.digits < 0 {
		c.digits = 0
	}
	return c
}

// Clock sets the clock used to measure the wall-clock budget. It is intended
// for tests.
func Clock(now func() time.Time) Option {
	return clockopt(now)
}

func (o clockopt) evalOption(c config) config {
	if o == nil {
		c.now = time.Now
		return c
	}
	c.now = o
	return c
}
