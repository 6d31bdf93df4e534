package observe

import "testing"

func TestShallowEqualMaps(t *testing.T) {
	shared := []int{1, 2}

	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"same map", Props{"x": 1}, Props{"x": 1}, true},
		{"different value", Props{"x": 1}, Props{"x": 2}, false},
		{"missing key", Props{"x": 1}, Props{"y": 1}, false},
		{"different length", Props{"x": 1}, Props{"x": 1, "y": 2}, false},
		{"same member identity", Props{"xs": shared}, Props{"xs": shared}, true},
		{"distinct member identity", Props{"xs": []int{1, 2}}, Props{"xs": []int{1, 2}}, false},
		{"both nil", nil, nil, true},
		{"one nil", Props{"x": 1}, nil, false},
		{"different types", Props{"x": 1}, State{"x": 1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShallowEqual(tc.a, tc.b); got != tc.want {
				t.Errorf("ShallowEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestShallowEqualStructs(t *testing.T) {
	type point struct{ X, Y int }

	if !ShallowEqual(point{1, 2}, point{1, 2}) {
		t.Error("expected equal structs to compare shallowly equal")
	}
	if ShallowEqual(point{1, 2}, point{1, 3}) {
		t.Error("expected differing structs to compare unequal")
	}
	if !ShallowEqual(&point{1, 2}, &point{1, 2}) {
		t.Error("expected pointers to equal structs to compare field-wise")
	}
}

func TestShallowEqualSlices(t *testing.T) {
	if !ShallowEqual([]any{1, "a"}, []any{1, "a"}) {
		t.Error("expected element-wise identical slices to be equal")
	}
	if ShallowEqual([]any{1}, []any{1, 2}) {
		t.Error("expected length mismatch to be unequal")
	}
}

func TestIdenticalMapIdentity(t *testing.T) {
	m := Props{"x": 1}
	same := m
	other := Props{"x": 1}

	if !identical(m, same) {
		t.Error("expected the same map header to be identical")
	}
	if identical(m, other) {
		t.Error("expected distinct maps with equal contents not to be identical")
	}
}

func TestMarkerSetConsumeIsSingleUse(t *testing.T) {
	var set markerSet
	p := Props{"x": 1}

	set.add(p)
	if !set.consume(p) {
		t.Error("expected first consume to find the marker")
	}
	if set.consume(p) {
		t.Error("expected the marker to be single-use")
	}
	if set.len() != 0 {
		t.Errorf("expected empty set, got %d entries", set.len())
	}
}

func TestMarkerSetMatchesByIdentityNotContents(t *testing.T) {
	var set markerSet
	set.add(Props{"x": 1})

	if set.consume(Props{"x": 1}) {
		t.Error("expected an equal but distinct map not to match")
	}
	if set.len() != 1 {
		t.Errorf("expected the original entry to remain, got %d", set.len())
	}
}
