package chttp

// Resolve walks a chain from start to its root and returns the first extracted
// value accepted by the predicate. parentOf must eventually return the zero
// value of N; chains are constructed root-first, so they are acyclic and the
// walk always terminates in O(depth). A node without a parent degenerates to
// evaluating just itself.
//
// The second return reports whether any value was accepted before the chain
// ran out.
func Resolve[N comparable, V any](start N, parentOf func(N) N, extract func(N) V, accept func(V) bool) (V, bool) {
	var zero N
	for n := start; n != zero; n = parentOf(n) {
		if v := extract(n); accept(v) {
			return v, true
		}
	}

	var none V
	return none, false
}

// Collect applies extract to every node from start to the root and feeds each
// result to merge, child first. Unlike [Resolve] it never stops early: every
// level of the chain contributes. Merging is the caller's policy; Collect
// itself has no other side effects.
func Collect[N comparable, V any](start N, parentOf func(N) N, extract func(N) V, merge func(V)) {
	var zero N
	for n := start; n != zero; n = parentOf(n) {
		merge(extract(n))
	}
}
