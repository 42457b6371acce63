package filterexpr

// Validate walks n and returns the first identifier not present in
// defined. This is the pre-compile pass described in SPEC_FULL.md §4.2:
// ruleengine.Build runs it before handing the AST to normalform.Compile
// so that an undefined item name fails construction instead of silently
// evaluating to false at query time.
func Validate(n Node, defined map[string]struct{}) (undefined string, ok bool) {
	switch t := n.(type) {
	case Ident:
		if _, present := defined[t.Name]; !present {
			return t.Name, false
		}
		return "", true
	case Not:
		return Validate(t.X, defined)
	case And:
		if name, ok := Validate(t.L, defined); !ok {
			return name, false
		}
		return Validate(t.R, defined)
	case Or:
		if name, ok := Validate(t.L, defined); !ok {
			return name, false
		}
		return Validate(t.R, defined)
	default:
		return "", true
	}
}
