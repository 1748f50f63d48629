// Package bracket implements the tiered-rate table lookup shared by the
// tariff calculators.
//
// A bracket table is an ordered list of rows sorted ascending by an upper
// bound. Resolution returns the first row whose bound is greater than or
// equal to the lookup value; a value beyond every bound resolves to the
// last row, which acts as an open-ended top bracket.
package bracket

// Row is a plain (upper bound, value) bracket row
type Row struct {
	// UpTo is the inclusive upper bound of this bracket
	UpTo float64 `json:"up_to"`

	// Value is the rate or fee selected by this bracket
	Value float64 `json:"value"`
}

// Resolve returns the value of the first row whose bound covers v.
// An empty table resolves to zero rather than failing; a value above
// every bound resolves to the last row's value.
func Resolve(v float64, rows []Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	for _, row := range rows {
		if v <= row.UpTo {
			return row.Value
		}
	}
	return rows[len(rows)-1].Value
}

// ResolveIn returns the first row of an arbitrary table whose bound
// covers v, using the supplied bound accessor. The second return is
// false only for an empty table, in which case the zero row is returned.
func ResolveIn[T any](v float64, rows []T, bound func(T) float64) (T, bool) {
	var zero T
	if len(rows) == 0 {
		return zero, false
	}
	for _, row := range rows {
		if v <= bound(row) {
			return row, true
		}
	}
	return rows[len(rows)-1], true
}
