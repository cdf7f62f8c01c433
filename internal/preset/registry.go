package preset

import (
	"errors"
	"sort"

	"github.com/samdwyer/tunnelgen/internal/gen"
)

// Def is a named bundle of generation parameters. Presets carry the tunable
// scalars; grid dimensions and waypoints come from the caller.
type Def struct {
	ID          string `json:"id"`
	Description string `json:"description"`

	DirectionWeights [4]float64 `json:"directionWeights"`
	MomentumProb     float64    `json:"momentumProb"`

	KernelRadiusMin      float64 `json:"kernelRadiusMin"`
	KernelRadiusMax      float64 `json:"kernelRadiusMax"`
	KernelRadiusStep     float64 `json:"kernelRadiusStep"`
	KernelSquarenessMin  float64 `json:"kernelSquarenessMin"`
	KernelSquarenessMax  float64 `json:"kernelSquarenessMax"`
	KernelSquarenessStep float64 `json:"kernelSquarenessStep"`
	FadeSteps            int     `json:"fadeSteps"`

	MinClearance      int `json:"minClearance"`
	MaxClearance      int `json:"maxClearance"`
	MinHazardBlob     int `json:"minHazardBlob"`
	PlatformClearance int `json:"platformClearance"`
	PlatformStride    int `json:"platformStride"`
}

// Config builds a full generation config for the given dimensions with this
// preset's parameters applied over the defaults.
func (d *Def) Config(width, height int) gen.Config {
	cfg := gen.Default(width, height)

	cfg.DirectionWeights = d.DirectionWeights
	cfg.MomentumProb = d.MomentumProb
	cfg.KernelRadiusMin = d.KernelRadiusMin
	cfg.KernelRadiusMax = d.KernelRadiusMax
	cfg.KernelRadiusStep = d.KernelRadiusStep
	cfg.KernelSquarenessMin = d.KernelSquarenessMin
	cfg.KernelSquarenessMax = d.KernelSquarenessMax
	cfg.KernelSquarenessStep = d.KernelSquarenessStep
	cfg.FadeSteps = d.FadeSteps
	cfg.MinClearance = d.MinClearance
	cfg.MaxClearance = d.MaxClearance
	cfg.MinHazardBlob = d.MinHazardBlob
	cfg.PlatformClearance = d.PlatformClearance
	cfg.PlatformStride = d.PlatformStride

	return cfg
}

// Registry holds loaded preset definitions and provides lookup utilities.
type Registry struct {
	presets map[string]*Def
	all     []Def
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(defs []Def) *Registry {
	registry := &Registry{
		presets: make(map[string]*Def),
		all:     defs,
	}
	for i := range defs {
		registry.presets[defs[i].ID] = &defs[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	defs, err := Load[[]Def]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(defs), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the preset with the given ID, or nil if not found.
func (r *Registry) Get(id string) *Def {
	return r.presets[id]
}

// Names returns all preset IDs in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.all))
	for i := range r.all {
		names = append(names, r.all[i].ID)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
