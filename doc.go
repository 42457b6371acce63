// Package pointcloudfilter composes the building blocks of a per-point
// filtering pipeline for streamed point-cloud frames.
//
// Seven packages cover the pipeline:
//
//	point/           — the Point type and its finiteness/intensity helpers
//	item/            — elementary predicates: PlanarBox, Intensity
//	filterexpr/      — boolean expression syntax over named items
//	normalform/      — DNF compilation and short-circuit evaluation
//	ruleengine/      — binds a compiled expression to a named item map
//	spf/             — the voxel-grid static/background point estimator
//	compositefilter/ — chains lidar, ground, rule and background stages
//
// A Filter built from compositefilter.NewFilter or BuildConfig is the
// usual entry point: ProcessFrame (or its errgroup-backed parallel
// counterpart) evaluates every point in a frame and advances the
// background estimator's window exactly once per frame.
package pointcloudfilter
