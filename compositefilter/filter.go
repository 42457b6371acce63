// Package compositefilter implements C6 of SPEC_FULL.md: it composes an
// optional lidar-range stage, an optional ground stage, the rule engine
// (C4), and the static-point filter (C5) into one per-point predicate,
// and drives the SPF's per-frame advance.
package compositefilter

import (
	"github.com/NEWSLabNTU/point-cloud-filter/point"
	"github.com/NEWSLabNTU/point-cloud-filter/ruleengine"
	"github.com/NEWSLabNTU/point-cloud-filter/spf"
)

// Stage is any per-point predicate the composite filter can chain: the
// lidar-range and ground-plane filters are external collaborators (out of
// scope for this module, per SPEC_FULL.md §1) that satisfy Stage; the
// composite filter only needs the uniform Contains method.
type Stage interface {
	Contains(p point.Point) bool
}

// StageFunc adapts an ordinary function to Stage, the way http.HandlerFunc
// adapts a function to http.Handler.
type StageFunc func(point.Point) bool

// Contains calls f.
func (f StageFunc) Contains(p point.Point) bool { return f(p) }

// Filter is the logical AND of independently configured stages, applied
// in order: lidar range, ground, rule engine, then background rejection.
// Any stage left nil behaves as the identity (always passes).
type Filter struct {
	lidar      Stage
	ground     Stage
	rules      *ruleengine.Engine
	background *spf.Filter
}

// Config names the stages a Filter composes. Every field is optional;
// a nil field is the identity for that stage.
type Config struct {
	Lidar      Stage
	Ground     Stage
	Rules      *ruleengine.Engine
	Background *spf.Filter
}

// NewFilter builds a composite Filter directly from already-built stages.
// Use BuildConfig instead when Rules/Background should be constructed
// from their serializable config forms.
func NewFilter(cfg Config) *Filter {
	return &Filter{
		lidar:      cfg.Lidar,
		ground:     cfg.Ground,
		rules:      cfg.Rules,
		background: cfg.Background,
	}
}

// Contains reports whether p survives every configured stage. The
// background stage keeps a point iff the SPF reports it is NOT
// background (SPEC_FULL.md §4.6d).
func (f *Filter) Contains(p point.Point) bool {
	if f.lidar != nil && !f.lidar.Contains(p) {
		return false
	}
	if f.ground != nil && !f.ground.Contains(p) {
		return false
	}
	if f.rules != nil && !f.rules.Contains(p) {
		return false
	}
	if f.background != nil && f.background.CheckIsBackground(p) {
		return false
	}
	return true
}

// Advance delegates to the background filter's Step, consuming exactly
// one window. A Filter with no background stage configured does nothing.
func (f *Filter) Advance() {
	if f.background != nil {
		f.background.Step()
	}
}

// ProcessFrame evaluates Contains on every point in the frame, in order,
// collects survivors, then calls Advance exactly once — so exactly one
// window is consumed per frame regardless of frame size.
func (f *Filter) ProcessFrame(points []point.Point) []point.Point {
	kept := make([]point.Point, 0, len(points))
	for _, p := range points {
		if f.Contains(p) {
			kept = append(kept, p)
		}
	}
	f.Advance()
	return kept
}
