package bracket

import "testing"

func sampleTable() []Row {
	return []Row{
		{UpTo: 500, Value: 600},
		{UpTo: 1000, Value: 1000},
		{UpTo: 2000, Value: 1500},
		{UpTo: 999999, Value: 4000},
	}
}

func TestResolveSelectsFirstCoveringRow(t *testing.T) {
	table := sampleTable()

	cases := []struct {
		value float64
		want  float64
	}{
		{0, 600},
		{500, 600},   // bound is inclusive
		{500.01, 1000},
		{1000, 1000},
		{1999, 1500},
		{2000, 1500},
		{2001, 4000},
	}

	for _, c := range cases {
		if got := Resolve(c.value, table); got != c.want {
			t.Errorf("Resolve(%v) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestResolveOpenEndedTopBracket(t *testing.T) {
	// A value beyond every bound resolves to the last row, never fails
	table := []Row{
		{UpTo: 100, Value: 1},
		{UpTo: 200, Value: 2},
	}
	if got := Resolve(1e9, table); got != 2 {
		t.Errorf("Resolve above all bounds = %v, want last row value 2", got)
	}
}

func TestResolveEmptyTableReturnsZero(t *testing.T) {
	if got := Resolve(42, nil); got != 0 {
		t.Errorf("Resolve on empty table = %v, want 0", got)
	}
}

func TestResolveMonotonicResult(t *testing.T) {
	// For a table with non-decreasing values, the resolved value must be
	// non-decreasing as the lookup value increases
	table := sampleTable()
	prev := Resolve(0, table)
	for v := 1.0; v <= 3000; v++ {
		got := Resolve(v, table)
		if got < prev {
			t.Fatalf("Resolve(%v) = %v decreased below %v", v, got, prev)
		}
		prev = got
	}
}

func TestResolveInReturnsMatchedRow(t *testing.T) {
	type row struct {
		max  float64
		name string
	}
	table := []row{
		{max: 10, name: "small"},
		{max: 100, name: "large"},
	}
	bound := func(r row) float64 { return r.max }

	got, ok := ResolveIn(5, table, bound)
	if !ok || got.name != "small" {
		t.Errorf("ResolveIn(5) = %+v ok=%v, want small row", got, ok)
	}

	got, ok = ResolveIn(1000, table, bound)
	if !ok || got.name != "large" {
		t.Errorf("ResolveIn above all bounds = %+v ok=%v, want last row", got, ok)
	}

	_, ok = ResolveIn(5, nil, bound)
	if ok {
		t.Error("ResolveIn on empty table reported a match")
	}
}
