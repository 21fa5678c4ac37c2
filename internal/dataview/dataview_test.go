package dataview

import "testing"

func TestNew(t *testing.T) {
	x := [][]float64{{0}, {1}, {2}, {3}}
	y := [][]float64{{1, 0}, {1, 0}, {0, 1}, {0, 1}}
	v, err := New(x, y)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v.NumRows() != 4 || v.NumFeatures() != 1 || v.NumRewards() != 2 {
		t.Fatalf("got n=%d p=%d d=%d, want 4,1,2", v.NumRows(), v.NumFeatures(), v.NumRewards())
	}
	if v.Value(2, 0) != 2 {
		t.Errorf("Value(2,0) = %v, want 2", v.Value(2, 0))
	}
	if v.Reward(0, 0) != 1 || v.Reward(0, 1) != 0 {
		t.Errorf("Reward(0,*) = %v,%v, want 1,0", v.Reward(0, 0), v.Reward(0, 1))
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name string
		x, y [][]float64
	}{
		{"empty x", nil, nil},
		{"row count mismatch", [][]float64{{0}}, [][]float64{{0}, {1}}},
		{"empty x row", [][]float64{{}}, [][]float64{{1}}},
		{"empty y row", [][]float64{{1}}, [][]float64{{}}},
		{"ragged x", [][]float64{{0}, {0, 1}}, [][]float64{{1}, {1}}},
		{"ragged y", [][]float64{{0}, {1}}, [][]float64{{1}, {1, 2}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.x, c.y); err == nil {
				t.Errorf("New(%s): want error, got nil", c.name)
			}
		})
	}
}

func TestValuePanicsOutOfRange(t *testing.T) {
	v, _ := New([][]float64{{0}}, [][]float64{{1}})
	defer func() {
		if recover() == nil {
			t.Errorf("Value(5,0) did not panic")
		}
	}()
	v.Value(5, 0)
}
