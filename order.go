package lexicode

import "cmp"

// cmpOrdered is the primitive total order used by the built-in String
// encoding and for Array lengths and Object keys: reflexive, antisymmetric, transitive,
// using the natural ordering of T. Grounded on the standard library's cmp
// package rather than hand-rolled, since cmp.Compare already provides
// exactly this three-valued contract and no third-party alternative in
// the corpus improves on it.
func cmpOrdered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}
