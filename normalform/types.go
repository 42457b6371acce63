// Package normalform converts a filterexpr.Node AST into disjunctive
// normal form (DNF), the form ruleengine evaluates directly.
//
// DNF and CNF are built by mutual recursion (SPEC_FULL.md §4.3 / §9): a
// DNF conjunction is computed by round-tripping through CNF, where
// conjunction is a trivial concatenation of clauses, and a DNF negation
// (De Morgan) yields a CNF that is expanded back to DNF.
// Each conversion consumes one value and returns the other; there is no
// cyclic ownership, only a pair of pure functions calling into each other.
package normalform

import "sort"

// Term is an identifier with an inversion flag: "p" or "¬p".
type Term struct {
	Name    string
	Negated bool
}

// Product is a conjunction of terms (an AND-clause); DNF is an OR of
// Products. CNF's Sum has the identical shape but the dual meaning (an
// OR-clause, combined by AND at the CNF level); both have underlying type
// []Term, so the Cartesian-product conversions in convert.go can share one
// implementation for both directions.
type Product []Term

// Sum is a disjunction of terms (an OR-clause); CNF is an AND of Sums.
type Sum []Term

// DNF is an ordered list of products; DNF evaluates true iff any product
// evaluates true (any product's terms are all satisfied).
type DNF []Product

// CNF is an ordered list of sums; CNF evaluates true iff every sum
// evaluates true (every sum has at least one satisfied term).
type CNF []Sum

// sortTerms returns terms deduplicated and sorted by (Name, Negated), so
// that two logically identical clauses built by different code paths
// compare and print identically.
func sortTerms(terms []Term) []Term {
	cp := append([]Term(nil), terms...)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Name != cp[j].Name {
			return cp[i].Name < cp[j].Name
		}
		return !cp[i].Negated && cp[j].Negated
	})

	out := cp[:0]
	for i, t := range cp {
		if i > 0 && t == cp[i-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// hasContradiction reports whether terms contains both (name, false) and
// (name, true) for some name. This is the single check used for both a
// false Product and a true Sum (SPEC_FULL.md §9's open question: the
// correct rule is applied here, not the "is_false" typo that only flips
// on a negated term).
func hasContradiction(terms []Term) bool {
	seen := make(map[string]bool, len(terms))
	seenNeg := make(map[string]bool, len(terms))
	for _, t := range terms {
		if t.Negated {
			seenNeg[t.Name] = true
		} else {
			seen[t.Name] = true
		}
	}
	for name := range seen {
		if seenNeg[name] {
			return true
		}
	}
	return false
}
