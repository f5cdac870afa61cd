package domino

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTileKey(t *testing.T) {
	if T(4, 3).Key() != T(3, 4) {
		t.Errorf("Key([4,3]) = %v", T(4, 3).Key())
	}
	if !T(4, 3).Equal(T(3, 4)) {
		t.Error("[4,3] should equal [3,4]")
	}
	if T(4, 3).Equal(T(4, 4)) {
		t.Error("[4,3] should not equal [4,4]")
	}
}

func TestTileJSON(t *testing.T) {
	var h Hand
	if err := json.Unmarshal([]byte(`[[6,1],[4,3]]`), &h); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want := (Hand{T(6, 1), T(4, 3)}); !reflect.DeepEqual(h, want) {
		t.Errorf("got %v, want %v", h, want)
	}

	b, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `[[6,1],[4,3]]` {
		t.Errorf("Marshal = %s", b)
	}

	if err := json.Unmarshal([]byte(`[[1,2,3]]`), &h); err == nil {
		t.Error("expected error for three-pip tile")
	}
}

func TestDots(t *testing.T) {
	tests := []struct {
		pip  int
		want []int
	}{
		{0, []int{}},
		{1, []int{4}},
		{3, []int{0, 4, 8}},
		{6, []int{0, 2, 3, 5, 6, 8}},
	}
	for _, tt := range tests {
		if got := Dots(tt.pip); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Dots(%d) = %v, want %v", tt.pip, got, tt.want)
		}
	}
	if Dots(7) != nil {
		t.Error("Dots(7) should be nil")
	}

	g := DotGrid(5)
	lit := 0
	for _, on := range g {
		if on {
			lit++
		}
	}
	if lit != 5 || !g[4] {
		t.Errorf("DotGrid(5) = %v", g)
	}
}
