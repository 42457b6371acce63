package normalform

import "github.com/NEWSLabNTU/point-cloud-filter/filterexpr"

// fromIdent builds the one-product, one-term DNF for a bare identifier.
func fromIdent(name string) DNF {
	return DNF{Product{{Name: name, Negated: false}}}
}

// or concatenates two DNFs' product lists: OR is native to DNF, no
// conversion needed.
func (a DNF) or(b DNF) DNF {
	out := make(DNF, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return reduceDNF(out)
}

// and computes the DNF conjunction of a and b by round-tripping through
// CNF, where conjunction is a trivial clause concatenation.
func (a DNF) and(b DNF) DNF {
	cnf := reduceCNF(append(append(CNF{}, dnfToCNF(a)...), dnfToCNF(b)...))
	return reduceDNF(cnfToDNF(cnf))
}

// not applies De Morgan's law: invert every product into a sum of
// negated terms, giving a CNF directly, then expand back to DNF.
func (a DNF) not() DNF {
	sums := make(CNF, len(a))
	for i, p := range a {
		inverted := make(Sum, len(p))
		for j, t := range p {
			inverted[j] = Term{Name: t.Name, Negated: !t.Negated}
		}
		sums[i] = inverted
	}
	return reduceDNF(cnfToDNF(reduceCNF(sums)))
}

// Compile converts an AST node into its fully reduced DNF. Every
// sub-expression is compiled recursively and reduced at each step, so
// Compile's own result needs no further reduction.
func Compile(n filterexpr.Node) DNF {
	switch t := n.(type) {
	case filterexpr.Ident:
		return fromIdent(t.Name)
	case filterexpr.Not:
		return Compile(t.X).not()
	case filterexpr.And:
		return Compile(t.L).and(Compile(t.R))
	case filterexpr.Or:
		return Compile(t.L).or(Compile(t.R))
	default:
		panic("normalform: unknown filterexpr.Node type")
	}
}
