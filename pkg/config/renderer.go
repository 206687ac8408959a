package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/integrator"
)

// LoadRendererConfigFile reads a renderer YAML file into a property bag and
// decodes it for the given integrator kind. An empty path yields the
// kind's defaults.
func LoadRendererConfigFile(path, kind string) (integrator.Config, error) {
	props := Props{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return integrator.Config{}, fmt.Errorf("config: reading renderer file: %w", err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return integrator.Config{}, fmt.Errorf("config: parsing renderer file: %w", err)
		}
		props = asProps(raw).(Props)
	}
	return LoadRendererConfig(props, kind)
}

// LoadRendererConfig decodes a property bag into an integrator.Config,
// following spec.md's renderer construction table: renderer::raycast reads
// bg_color/use_constant_color, the three path tracers read spp/maxLength.
// numWorkers and seed are accepted by every kind since they govern the
// shared parallelfor/RNG plumbing rather than any one integrator.
func LoadRendererConfig(props Props, kind string) (integrator.Config, error) {
	cfg := integrator.DefaultConfig()
	cfg.NumWorkers = getInt(props, "num_workers", cfg.NumWorkers)
	cfg.Seed = uint64(getInt64(props, "seed", int64(cfg.Seed)))

	switch kind {
	case "renderer::raycast":
		bg, err := getVec3(props, "bg_color", core.Vec3{})
		if err != nil {
			return integrator.Config{}, err
		}
		cfg.BGColor = bg
		cfg.UseConstantColor = getBool(props, "use_constant_color", false)
	case "renderer::pt_naive", "renderer::volpt_naive", "renderer::volpt":
		cfg.SPP = getInt64(props, "spp", cfg.SPP)
		cfg.MaxLength = getInt(props, "maxLength", cfg.MaxLength)
	}
	return cfg, nil
}
