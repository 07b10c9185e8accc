package render

// Rows is a half-open row range [Start, End).
type Rows struct {
	Start, End int
}

func (r Rows) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Rows) Contains(y int) bool { return y >= r.Start && y < r.End }

// Split divides [0, height) into n contiguous ranges with no gap and no
// overlap. Leftover rows go one each to the last ranges. n is capped at
// height so no range is empty.
func Split(height, n int) []Rows {
	if height <= 0 || n <= 0 {
		return nil
	}
	if n > height {
		n = height
	}
	base := height / n
	extra := height % n
	out := make([]Rows, n)
	y := 0
	for i := range out {
		h := base
		if i >= n-extra {
			h++
		}
		out[i] = Rows{Start: y, End: y + h}
		y += h
	}
	return out
}
