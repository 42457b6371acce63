package ruleengine

import (
	"fmt"

	cfgpkg "github.com/NEWSLabNTU/point-cloud-filter/config"
	"github.com/NEWSLabNTU/point-cloud-filter/item"
)

// ItemConfig is the tagged-union serializable form of a named item: each
// value carries exactly one of PlanarBox or Intensity, matching the
// single built item it deflates from.
type ItemConfig struct {
	PlanarBox *item.PlanarBoxConfig `json:"planar_box,omitempty"`
	Intensity *item.IntensityConfig `json:"intensity,omitempty"`
}

// Config is the serializable form of an Engine: the expression text plus
// one ItemConfig per named item.
type Config struct {
	Expr  string                `json:"expr"`
	Items map[string]ItemConfig `json:"items"`
}

// BuildConfig builds every item in cfg.Items, then delegates to Build.
// It is the collaborator-facing entry point named in SPEC_FULL.md §6.
func BuildConfig(cfg Config) (*Engine, error) {
	items := make(map[string]interface{}, len(cfg.Items))
	for name, ic := range cfg.Items {
		built, err := ic.build()
		if err != nil {
			return nil, fmt.Errorf("ruleengine: item %q: %w", name, err)
		}
		items[name] = built
	}
	return Build(cfg.Expr, items)
}

func (ic ItemConfig) build() (interface{}, error) {
	switch {
	case ic.PlanarBox != nil && ic.Intensity == nil:
		return item.NewPlanarBox(*ic.PlanarBox)
	case ic.Intensity != nil && ic.PlanarBox == nil:
		return item.NewIntensity(*ic.Intensity)
	default:
		return nil, cfgpkg.Invalidf("item config must set exactly one of planar_box or intensity")
	}
}

// Deflate returns the Config this Engine was built from. Items built
// through Build (rather than BuildConfig) deflate only if their
// concrete type is *item.PlanarBox or *item.Intensity; an item of any
// other concrete type keeps its name but deflates to an empty ItemConfig.
func (e *Engine) Deflate() Config {
	out := Config{Expr: e.expr, Items: make(map[string]ItemConfig, len(e.items))}
	for name, v := range e.items {
		out.Items[name] = deflateItem(v)
	}
	return out
}

func deflateItem(v interface{}) ItemConfig {
	switch it := v.(type) {
	case *item.PlanarBox:
		cfg := it.Deflate()
		return ItemConfig{PlanarBox: &cfg}
	case *item.Intensity:
		cfg := it.Deflate()
		return ItemConfig{Intensity: &cfg}
	default:
		return ItemConfig{}
	}
}
