// Package config decodes YAML scene and renderer descriptions into the
// property-bag shape the original construct(props) contract expects
// (original_source/src/renderer/renderer_raycast.cpp and friends take a
// Json properties object), then builds the concrete types the rest of the
// kernel is written against.
package config

import (
	"fmt"

	"github.com/lumenrender/corept/pkg/core"
)

// Props is a property bag: the decoded form of a YAML mapping node, keyed
// by string the way the original's Json object is keyed.
type Props map[string]any

func getString(p Props, key, def string) string {
	if v, ok := p[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func getFloat(p Props, key string, def float64) float64 {
	if v, ok := p[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return def
}

func getInt(p Props, key string, def int) int {
	if v, ok := p[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return def
}

func getInt64(p Props, key string, def int64) int64 {
	if v, ok := p[key]; ok {
		switch n := v.(type) {
		case int:
			return int64(n)
		case float64:
			return int64(n)
		}
	}
	return def
}

func getBool(p Props, key string, def bool) bool {
	if v, ok := p[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// getVec3 reads a 3-element sequence ("[x, y, z]") into a Vec3.
func getVec3(p Props, key string, def core.Vec3) (core.Vec3, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	seq, ok := v.([]any)
	if !ok || len(seq) != 3 {
		return core.Vec3{}, fmt.Errorf("config: %q must be a 3-element sequence", key)
	}
	comp := make([]float64, 3)
	for i, raw := range seq {
		switch n := raw.(type) {
		case float64:
			comp[i] = n
		case int:
			comp[i] = float64(n)
		default:
			return core.Vec3{}, fmt.Errorf("config: %q[%d] is not numeric", key, i)
		}
	}
	return core.NewVec3(comp[0], comp[1], comp[2]), nil
}

func requireString(p Props, key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("config: missing required property %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("config: property %q must be a string", key)
	}
	return s, nil
}

// asProps re-keys a generic map produced by yaml.v3 (map[string]interface{}
// for string-keyed mappings) into Props, recursing into nested mappings and
// sequences so every level of the tree is walkable the same way.
func asProps(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(Props, len(t))
		for k, val := range t {
			out[k] = asProps(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = asProps(val)
		}
		return out
	default:
		return v
	}
}

func asPropsSlice(v any) []Props {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Props, 0, len(seq))
	for _, item := range seq {
		if p, ok := item.(Props); ok {
			out = append(out, p)
		} else if m, ok := item.(map[string]any); ok {
			out = append(out, Props(asProps(m).(Props)))
		}
	}
	return out
}
