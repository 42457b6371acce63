// Package ruleengine evaluates a compiled DNF against a point, dispatching
// each named atom to its item predicate (C4 of SPEC_FULL.md).
package ruleengine

import (
	"github.com/NEWSLabNTU/point-cloud-filter/filterexpr"
	"github.com/NEWSLabNTU/point-cloud-filter/normalform"
	"github.com/NEWSLabNTU/point-cloud-filter/point"
)

// GeometryItem is satisfied by items that test a full point, such as
// item.PlanarBox.
type GeometryItem interface {
	Contains(p point.Point) bool
}

// IntensityItem is satisfied by items that test only the intensity
// scalar, such as item.Intensity.
type IntensityItem interface {
	Contains(intensity *float64) bool
}

// Engine is a compiled rule: an immutable pair of (DNF, name->item map).
// Build validates every identifier the expression references against the
// item map before returning an Engine, so Contains never encounters an
// undefined name.
type Engine struct {
	expr  string
	items map[string]interface{}
	dnf   normalform.DNF
}

// Build parses exprSrc, validates every identifier against items, compiles
// the result to DNF, and returns an immutable Engine. Each value in items
// must implement GeometryItem or IntensityItem (e.g. *item.PlanarBox or
// *item.Intensity); any other value fails evaluation silently false,
// which Build itself does not detect since it only checks identifier
// presence, not item type — see Contains's dispatch precondition.
func Build(exprSrc string, items map[string]interface{}) (*Engine, error) {
	node, err := filterexpr.Parse(exprSrc)
	if err != nil {
		return nil, err
	}

	defined := make(map[string]struct{}, len(items))
	for name := range items {
		defined[name] = struct{}{}
	}
	if name, ok := filterexpr.Validate(node, defined); !ok {
		return nil, &UndefinedItemError{Name: name}
	}

	return &Engine{
		expr:  exprSrc,
		items: items,
		dnf:   normalform.Compile(node),
	}, nil
}

// Contains evaluates the compiled DNF against p, short-circuiting both
// the outer OR and each product's inner AND (SPEC_FULL.md §4.4). An empty
// DNF is false; a DNF holding one empty product is true.
func (e *Engine) Contains(p point.Point) bool {
	return e.dnf.Eval(func(name string) bool {
		return evalItem(e.items[name], p)
	})
}

func evalItem(item interface{}, p point.Point) bool {
	switch it := item.(type) {
	case GeometryItem:
		return it.Contains(p)
	case IntensityItem:
		return it.Contains(p.Intensity)
	default:
		return false
	}
}
