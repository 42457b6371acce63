package normalform

// Eval evaluates dnf against termValue, a callback returning the truth
// value of a named atom. Both the outer OR and each product's inner AND
// short-circuit: termValue is not called once a product or the whole DNF
// is already decided.
//
// An empty DNF (no products) evaluates to false; a DNF containing an
// empty product evaluates to true. Both are handled by the loop shapes
// below with no special-casing needed.
func (dnf DNF) Eval(termValue func(name string) bool) bool {
	for _, product := range dnf {
		if evalProduct(product, termValue) {
			return true
		}
	}
	return false
}

func evalProduct(product Product, termValue func(name string) bool) bool {
	for _, term := range product {
		v := termValue(term.Name)
		if term.Negated {
			v = !v
		}
		if !v {
			return false
		}
	}
	return true
}
