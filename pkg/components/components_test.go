package components

import "testing"

func TestCollisionInGroup(t *testing.T) {
	c := &CollisionComponent{Static: true, Groups: []string{"platforms", "goal"}}

	tests := []struct {
		group string
		want  bool
	}{
		{"platforms", true},
		{"goal", true},
		{"hazards", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := c.InGroup(tt.group); got != tt.want {
			t.Errorf("InGroup(%q) = %v, want %v", tt.group, got, tt.want)
		}
	}
}
