package normalform

// cartesianProduct computes the Cartesian product of a list of term
// lists. Following the usual convention, the product of zero lists is a
// single empty combination; the product involving any empty list is
// empty. This one helper backs both CNF->DNF (distribute OR over AND)
// and DNF->CNF (distribute AND over OR).
func cartesianProduct(lists [][]Term) [][]Term {
	combos := [][]Term{{}}
	for _, lst := range lists {
		if len(lst) == 0 {
			return nil
		}
		next := make([][]Term, 0, len(combos)*len(lst))
		for _, combo := range combos {
			for _, item := range lst {
				nc := make([]Term, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = item
				next = append(next, nc)
			}
		}
		combos = next
	}
	return combos
}

// dnfToCNF distributes AND over OR: each resulting sum picks one term
// from every product. A DNF with zero products converts to the CNF with
// one empty sum (an unsatisfiable OR, i.e. false written in CNF);
// reduceCNF below then deliberately leaves that sum in place since an
// empty sum is not a contradiction by the hasContradiction rule.
func dnfToCNF(dnf DNF) CNF {
	lists := make([][]Term, len(dnf))
	for i, p := range dnf {
		lists[i] = []Term(p)
	}
	combos := cartesianProduct(lists)
	out := make(CNF, len(combos))
	for i, c := range combos {
		out[i] = Sum(c)
	}
	return out
}

// cnfToDNF distributes OR over AND: each resulting product picks one
// term from every sum. A CNF with zero sums converts to the DNF with one
// empty product (a vacuously true AND), matching SPEC_FULL.md §4.4's
// "DNF containing an empty product evaluates to true".
func cnfToDNF(cnf CNF) DNF {
	lists := make([][]Term, len(cnf))
	for i, s := range cnf {
		lists[i] = []Term(s)
	}
	combos := cartesianProduct(lists)
	out := make(DNF, len(combos))
	for i, c := range combos {
		out[i] = Product(c)
	}
	return out
}

// reduceDNF sorts/dedups each product's terms and drops any product that
// is false (contains both p and ¬p for some p).
func reduceDNF(dnf DNF) DNF {
	out := make(DNF, 0, len(dnf))
	for _, p := range dnf {
		terms := sortTerms(p)
		if hasContradiction(terms) {
			continue
		}
		out = append(out, Product(terms))
	}
	return out
}

// reduceCNF sorts/dedups each sum's terms and drops any sum that is true
// (contains both p and ¬p for some p).
func reduceCNF(cnf CNF) CNF {
	out := make(CNF, 0, len(cnf))
	for _, s := range cnf {
		terms := sortTerms(s)
		if hasContradiction(terms) {
			continue
		}
		out = append(out, Sum(terms))
	}
	return out
}
