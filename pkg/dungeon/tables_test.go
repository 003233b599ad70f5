package dungeon

import "testing"

func TestFromDungeonLevel(t *testing.T) {
	table := []Transition{{1, 2}, {4, 3}, {6, 5}}

	tests := []struct {
		level int
		want  int
	}{
		{1, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{6, 5},
		{10, 5},
	}

	for _, tt := range tests {
		if got := FromDungeonLevel(table, tt.level); got != tt.want {
			t.Errorf("level %d: expected %d, got %d", tt.level, tt.want, got)
		}
	}
}

func TestFromDungeonLevelBelowFirstThreshold(t *testing.T) {
	table := []Transition{{4, 25}}

	if got := FromDungeonLevel(table, 3); got != 0 {
		t.Errorf("expected 0 below the first threshold, got %d", got)
	}
	if got := FromDungeonLevel(nil, 1); got != 0 {
		t.Errorf("expected 0 for an empty table, got %d", got)
	}
}
