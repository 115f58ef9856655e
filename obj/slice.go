package obj

// Slice is a sequence slice specification. Any of start, stop and step may
// be left unspecified (nil), in which case the natural bound for the
// stride direction applies. Semantics follow the standard sequence slice
// contract: negative components count from the end, out-of-range
// components are clamped, and the step may be negative but never zero.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// SliceAll selects every position, a[:].
func SliceAll() Slice {
	return Slice{}
}

// SliceOf selects [start:stop].
func SliceOf(start, stop int) Slice {
	return Slice{Start: &start, Stop: &stop}
}

// SliceFrom selects [start:].
func SliceFrom(start int) Slice {
	return Slice{Start: &start}
}

// SliceTo selects [:stop].
func SliceTo(stop int) Slice {
	return Slice{Stop: &stop}
}

// SliceEvery selects [::step].
func SliceEvery(step int) Slice {
	return Slice{Step: &step}
}

// SliceStep selects [start:stop:step].
func SliceStep(start, stop, step int) Slice {
	return Slice{Start: &start, Stop: &stop, Step: &step}
}

// Positions maps the slice onto a container of length n, returning the
// resolved target positions in traversal order: ascending for a positive
// step, descending for a negative one. Every returned position is in
// [0, n). A zero step is the only error.
func (s Slice) Positions(n int) ([]int, error) {
	start, _, step, count, err := s.resolve(n)
	if err != nil {
		return nil, err
	}
	res := make([]int, 0, count)
	for i, p := 0, start; i < count; i, p = i+1, p+step {
		res = append(res, p)
	}
	return res, nil
}

// resolve normalizes the slice against length n, returning the adjusted
// start and stop, the step, and the count of selected positions.
func (s Slice) resolve(n int) (start, stop, step, count int, err error) {
	step = 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return 0, 0, 0, 0, ErrZeroStep
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	if step > 0 {
		start, stop = lower, upper
	} else {
		start, stop = upper, lower
	}
	if s.Start != nil {
		start = adjustIndex(*s.Start, n, lower, upper)
	}
	if s.Stop != nil {
		stop = adjustIndex(*s.Stop, n, lower, upper)
	}

	if step > 0 {
		if stop > start {
			count = (stop - start + step - 1) / step
		}
	} else {
		if start > stop {
			count = (start - stop - step - 1) / -step
		}
	}
	return start, stop, step, count, nil
}

// adjustIndex shifts a negative index by n, then clamps into
// [lower, upper].
func adjustIndex(i, n, lower, upper int) int {
	if i < 0 {
		i += n
		if i < lower {
			return lower
		}
		return i
	}
	if i > upper {
		return upper
	}
	return i
}
