package sat

// luby returns the i-th term (1-indexed) of the standard Luby restart
// sequence: 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8, ...
//
// Equivalently, the smallest k with 2^k - 1 >= i; if i == 2^k - 1,
// the term is 2^(k-1), otherwise it recurses on i - (2^(k-1) - 1).
func luby(i int) int {
	k := 1
	for (1<<uint(k))-1 < i {
		k++
	}
	if i == (1<<uint(k))-1 {
		return 1 << uint(k-1)
	}
	return luby(i - (1<<uint(k-1) - 1))
}
