package compositefilter

import (
	"github.com/NEWSLabNTU/point-cloud-filter/ruleengine"
	"github.com/NEWSLabNTU/point-cloud-filter/spf"
)

// SerialConfig is the serializable form of a Filter's Rules and Background
// stages. Lidar and Ground have no defined serial form in this module's
// scope (SPEC_FULL.md §1 treats them as external collaborators reached
// only through Stage), so BuildConfig takes them as already-built values.
type SerialConfig struct {
	Rules      *ruleengine.Config `json:"rules,omitempty"`
	Background *spf.Config        `json:"background,omitempty"`
}

// BuildConfig builds the Rules and Background stages from cfg and composes
// them with the caller-supplied lidar and ground stages into a Filter.
// Either stage argument may be nil.
func BuildConfig(cfg SerialConfig, lidar, ground Stage) (*Filter, error) {
	var rules *ruleengine.Engine
	if cfg.Rules != nil {
		built, err := ruleengine.BuildConfig(*cfg.Rules)
		if err != nil {
			return nil, err
		}
		rules = built
	}

	var background *spf.Filter
	if cfg.Background != nil {
		built, err := spf.NewFilter(*cfg.Background)
		if err != nil {
			return nil, err
		}
		background = built
	}

	return NewFilter(Config{
		Lidar:      lidar,
		Ground:     ground,
		Rules:      rules,
		Background: background,
	}), nil
}

// Deflate returns the serializable Rules and Background config this Filter
// was built from. Lidar and Ground are never included.
func (f *Filter) Deflate() SerialConfig {
	out := SerialConfig{}
	if f.rules != nil {
		c := f.rules.Deflate()
		out.Rules = &c
	}
	if f.background != nil {
		c := f.background.Deflate()
		out.Background = &c
	}
	return out
}
