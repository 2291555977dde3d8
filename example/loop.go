package main

// maxCatchUp bounds the updates run for one frame after a stall.
const maxCatchUp = 5

// fixedStep turns wall-clock time into a whole number of fixed updates.
type fixedStep struct {
	step float64
	acc  float64
}

func newFixedStep(fps int) *fixedStep {
	return &fixedStep{step: 1 / float64(fps)}
}

// Step returns the update interval in seconds.
func (f *fixedStep) Step() float32 {
	return float32(f.step)
}

// Advance adds elapsed seconds and returns how many updates are due.
// Time beyond maxCatchUp steps is dropped.
func (f *fixedStep) Advance(elapsed float64) int {
	f.acc += elapsed
	n := int(f.acc / f.step)
	if n > maxCatchUp {
		f.acc = 0
		return maxCatchUp
	}
	f.acc -= float64(n) * f.step
	return n
}

// Remaining returns the seconds until the next update is due.
func (f *fixedStep) Remaining() float64 {
	return max(f.step-f.acc, 0)
}
