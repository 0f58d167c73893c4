package puzzle

import "testing"

func TestAvailability(t *testing.T) {
	col := Column{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	tests := []struct {
		name     string
		selected []string
		want     []TileState
	}{
		{"nothing selected", nil, []TileState{Active, Blocked, Blocked}},
		{"bottom selected", []string{"a"}, []TileState{Selected, Active, Blocked}},
		{"two selected", []string{"a", "b"}, []TileState{Selected, Selected, Active}},
		{"gap above selection", []string{"b"}, []TileState{Active, Selected, Active}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isSelected := func(id string) bool {
				for _, s := range tt.selected {
					if s == id {
						return true
					}
				}
				return false
			}
			for pos, want := range tt.want {
				if got := Availability(col, pos, isSelected); got != want {
					t.Errorf("pos %d: got %s, want %s", pos, got, want)
				}
			}
		})
	}
}
