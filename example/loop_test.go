package main

import (
	"math"
	"testing"
)

func TestFixedStepAdvance(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []float64
		want    []int
	}{
		{"one frame", []float64{1.0 / 60}, []int{1}},
		{"two frames", []float64{2.0 / 60}, []int{2}},
		{"accumulates", []float64{0.01, 0.01}, []int{0, 1}},
		{"stall is capped", []float64{1}, []int{maxCatchUp}},
		{"stall drops the backlog", []float64{1, 0.001}, []int{maxCatchUp, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFixedStep(60)
			for i, e := range tt.elapsed {
				if got := clock.Advance(e); got != tt.want[i] {
					t.Errorf("Advance(%v) #%d = %d, want %d", e, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestFixedStepRemaining(t *testing.T) {
	clock := newFixedStep(50)
	clock.Advance(0.005)
	if got := clock.Remaining(); math.Abs(got-0.015) > 1e-9 {
		t.Errorf("Remaining() = %v, want 0.015", got)
	}
}

func TestSceneFixedStepUpdates(t *testing.T) {
	scene, dev := newTestScene(t)
	clock := newFixedStep(60)

	// One second of wall time in uneven frames.
	steps := 0
	for i := 0; i < 50; i++ {
		elapsed := 0.01
		if i%2 == 1 {
			elapsed = 0.03
		}
		n := clock.Advance(elapsed)
		for j := 0; j < n; j++ {
			scene.Update(clock.Step(), 0, 0)
		}
		steps += n
	}
	if steps < 59 || steps > 60 {
		t.Fatalf("steps = %d, want 60", steps)
	}

	scene.Draw()
	// Spin 30 deg/s from 90.
	want := 90 + 30*float32(steps)/60
	if got := dev.Draws[2].Uniforms.Angle; math.Abs(float64(got-want)) > 1e-3 {
		t.Errorf("angle = %v, want %v", got, want)
	}
}
