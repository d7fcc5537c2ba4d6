package transforms

import (
	"math"
	"testing"

	"github.com/willbeason/newton-fractal/pkg/geometry"
)

var cubeRoots = []geometry.Complex{
	geometry.New(1, 0),
	geometry.New(-0.5, math.Sqrt(3)/2),
	geometry.New(-0.5, -math.Sqrt(3)/2),
}

func TestFindRootAtRoots(t *testing.T) {
	n := DefaultNewton()

	for _, root := range cubeRoots {
		got := n.FindRoot(root)
		if !got.Converged {
			t.Errorf("FindRoot(%v) did not converge", root)
		}
		if got.Iterations != 0 {
			t.Errorf("FindRoot(%v) took %d iterations, want 0", root, got.Iterations)
		}
		if !geometry.ApproxEqual(got.Value, root, geometry.DefaultEpsilon) {
			t.Errorf("FindRoot(%v) = %v", root, got.Value)
		}
	}
}

func TestFindRootAtOrigin(t *testing.T) {
	n := DefaultNewton()

	got := n.FindRoot(geometry.New(0, 0))
	if got.Converged {
		t.Errorf("FindRoot(0) converged to %v", got.Value)
	}
	if got.Iterations != DefaultMaxIterations {
		t.Errorf("FindRoot(0) took %d iterations, want %d", got.Iterations, DefaultMaxIterations)
	}
}

func TestFindRootConverges(t *testing.T) {
	n := DefaultNewton()

	tcs := []struct {
		name  string
		start geometry.Complex
		want  geometry.Complex
	}{
		{name: "positive real axis", start: geometry.New(2, 0), want: cubeRoots[0]},
		{name: "upper half", start: geometry.New(-0.5, 0.87), want: cubeRoots[1]},
		{name: "lower half", start: geometry.New(-1, -1), want: cubeRoots[2]},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := n.FindRoot(tc.start)
			if !got.Converged {
				t.Fatalf("FindRoot(%v) did not converge: %+v", tc.start, got)
			}
			if got.Iterations <= 0 || got.Iterations >= DefaultMaxIterations {
				t.Errorf("FindRoot(%v) took %d iterations", tc.start, got.Iterations)
			}
			if !geometry.ApproxEqual(got.Value, tc.want, geometry.DefaultEpsilon) {
				t.Errorf("FindRoot(%v) = %v, want %v", tc.start, got.Value, tc.want)
			}
		})
	}
}

func TestFindRootIterationCap(t *testing.T) {
	// Far from the roots each step only shrinks z by about a third, so a
	// small cap runs out first.
	n := Newton{MaxIterations: 3, Epsilon: geometry.DefaultEpsilon}

	got := n.FindRoot(geometry.New(1e6, 1e6))
	if got.Converged {
		t.Fatalf("FindRoot converged with a cap of 3: %+v", got)
	}
	if got.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", got.Iterations)
	}
	if !got.Value.IsFinite() {
		t.Errorf("Value = %v, want a finite point", got.Value)
	}
}

func TestStep(t *testing.T) {
	// At z = 2: f = 7, f' = 12.
	delta, ok := Step(geometry.New(2, 0))
	if !ok {
		t.Fatal("Step(2) reported singular")
	}
	if !geometry.ApproxEqual(delta, geometry.New(7.0/12.0, 0), 1e-12) {
		t.Errorf("Step(2) = %v, want 7/12", delta)
	}

	// At z = i: f = -i - 1, f' = -3, so the update is (1+i)/3.
	delta, ok = Step(geometry.New(0, 1))
	if !ok {
		t.Fatal("Step(i) reported singular")
	}
	if !geometry.ApproxEqual(delta, geometry.New(1.0/3.0, 1.0/3.0), 1e-12) {
		t.Errorf("Step(i) = %v, want (1+i)/3", delta)
	}
}

func TestStepSingular(t *testing.T) {
	tcs := []struct {
		name string
		z    geometry.Complex
	}{
		{name: "origin", z: geometry.New(0, 0)},
		{name: "underflow", z: geometry.New(1e-170, 0)},
		{name: "nan", z: geometry.New(math.NaN(), 0)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if delta, ok := Step(tc.z); ok {
				t.Errorf("Step(%v) = %v, want singular", tc.z, delta)
			}
		})
	}
}

func TestNext(t *testing.T) {
	var tr Transform = DefaultNewton()

	next, ok := tr.Next(geometry.New(2, 0))
	if !ok {
		t.Fatal("Next(2) reported singular")
	}
	if !geometry.ApproxEqual(next, geometry.New(2-7.0/12.0, 0), 1e-12) {
		t.Errorf("Next(2) = %v", next)
	}

	if _, ok := tr.Next(geometry.New(0, 0)); ok {
		t.Error("Next(0) should report singular")
	}
}
