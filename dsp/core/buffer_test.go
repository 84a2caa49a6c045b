package core

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		stop  float64
		n     int
		want  []float64
	}{
		{name: "empty", start: 0, stop: 1, n: 0, want: []float64{}},
		{name: "single", start: 0, stop: 1, n: 1, want: []float64{0}},
		{name: "endpoints", start: 0, stop: 1, n: 2, want: []float64{0, 1}},
		{name: "five", start: 0, stop: 1, n: 5, want: []float64{0, 0.25, 0.5, 0.75, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.start, tt.stop, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Fatalf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinspaceEndpointExact(t *testing.T) {
	got := Linspace(0, 0.1, 4410)
	if got[len(got)-1] != 0.1 {
		t.Fatalf("last = %v, want 0.1", got[len(got)-1])
	}
}

func TestJoinDoesNotAlias(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3}

	out := Join(a, b)
	out[0] = 99

	if a[0] != 1 {
		t.Fatalf("a[0] = %v, want 1", a[0])
	}
	if len(out) != 3 || out[2] != 3 {
		t.Fatalf("unexpected out: %#v", out)
	}
}

func TestTile(t *testing.T) {
	out := Tile([]float64{1, 2}, 3)
	want := []float64{1, 2, 1, 2, 1, 2}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if got := Tile([]float64{1}, 0); len(got) != 0 {
		t.Fatalf("Tile(_, 0) len = %d, want 0", len(got))
	}
}

func TestClone(t *testing.T) {
	if Clone(nil) != nil {
		t.Fatal("Clone(nil) should stay nil")
	}

	src := []float64{1, 2}
	dst := Clone(src)
	dst[0] = 5
	if src[0] != 1 {
		t.Fatalf("src[0] = %v, want 1", src[0])
	}
}
