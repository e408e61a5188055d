package world

import "testing"

func TestRoomGeometry(t *testing.T) {
	r := Room{X: 2, Y: 3, Width: 4, Height: 2}

	if cx, cy := r.Center(); cx != 4 || cy != 4 {
		t.Errorf("Center() = (%d,%d), want (4,4)", cx, cy)
	}
	if !r.Contains(5, 4) || r.Contains(6, 4) || r.Contains(2, 5) {
		t.Error("Contains should cover exactly [2,6)x[3,5)")
	}
	if !r.Intersects(Room{X: 5, Y: 4, Width: 3, Height: 3}) {
		t.Error("overlapping rooms should intersect")
	}
	if r.Intersects(Room{X: 6, Y: 3, Width: 1, Height: 1}) {
		t.Error("touching rooms should not intersect")
	}
}

func TestRoomCrowds(t *testing.T) {
	r := Room{X: 0, Y: 0, Width: 3, Height: 3}
	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{"one margin apart", Room{X: 5, Y: 0, Width: 2, Height: 2}, true},
		{"margins touching", Room{X: 6, Y: 0, Width: 2, Height: 2}, true},
		{"two margins apart", Room{X: 7, Y: 0, Width: 2, Height: 2}, false},
		{"diagonal inside both margins", Room{X: 6, Y: 6, Width: 2, Height: 2}, true},
		{"diagonal past the margins", Room{X: 7, Y: 7, Width: 2, Height: 2}, false},
		{"below, one margin apart", Room{X: 0, Y: 5, Width: 2, Height: 2}, true},
		{"below, two margins apart", Room{X: 0, Y: 7, Width: 2, Height: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Crowds(tt.other, 2, 2); got != tt.want {
				t.Errorf("Crowds(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Crowds(r, 2, 2); got != tt.want {
				t.Errorf("Crowds is not symmetric for %+v", tt.other)
			}
		})
	}
}
