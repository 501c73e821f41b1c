package contour

// Range returns the half-open slice [start, end) of n items owned by worker
// id out of p workers. Ranges of ids 0..p-1 are contiguous, disjoint and
// cover [0, n) exactly; with more workers than items some ranges are empty.
func Range(id, p, n int) (start, end int) {
	start = id * n / p
	end = min((id+1)*n/p, n)
	return start, end
}
