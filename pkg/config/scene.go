package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/light"
	"github.com/lumenrender/corept/pkg/material"
	"github.com/lumenrender/corept/pkg/medium"
	"github.com/lumenrender/corept/pkg/scene"
)

// SceneConfig is the decoded form of a scene YAML document: a camera, a
// set of named materials and lights, a list of shape primitives referring
// to them by name, an optional participating medium, and the name of the
// acceleration structure to build (spec.md's build(name, props) call —
// the only accelerator this kernel implements is the BVH, so the accel
// name is recorded but not consulted: Build always gets a BVH).
type SceneConfig struct {
	Width, Height int
	Camera        CameraConfig
	Materials     map[string]Props
	Lights        map[string]Props
	Shapes        []ShapeConfig
	Medium        Props
	Accel         string
}

// CameraConfig is the eye/look-at/field-of-view description of a pinhole
// camera, matching scene.NewCamera's parameters.
type CameraConfig struct {
	Eye, LookAt, Up core.Vec3
	VFov            float64
}

// ShapeConfig names a shape, the material it's painted with, and — if it
// doubles as an emitter — the light it's paired with.
type ShapeConfig struct {
	Props
	Material string
	Light    string
}

// LoadSceneFile reads and decodes a scene YAML document into a SceneConfig.
func LoadSceneFile(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading scene file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing scene file: %w", err)
	}
	root := asProps(raw).(Props)

	cfg := &SceneConfig{
		Materials: map[string]Props{},
		Lights:    map[string]Props{},
	}
	cfg.Width = getInt(root, "width", 640)
	cfg.Height = getInt(root, "height", 480)
	cfg.Accel = getString(root, "accel", "accel::bvh")

	camProps, _ := root["camera"].(Props)
	eye, err := getVec3(camProps, "eye", core.NewVec3(0, 0, 1))
	if err != nil {
		return nil, err
	}
	lookAt, err := getVec3(camProps, "look_at", core.NewVec3(0, 0, 0))
	if err != nil {
		return nil, err
	}
	up, err := getVec3(camProps, "up", core.NewVec3(0, 1, 0))
	if err != nil {
		return nil, err
	}
	cfg.Camera = CameraConfig{
		Eye:    eye,
		LookAt: lookAt,
		Up:     up,
		VFov:   getFloat(camProps, "vfov", 40),
	}

	if matsRaw, ok := root["materials"].(Props); ok {
		for name, v := range matsRaw {
			if p, ok := v.(Props); ok {
				cfg.Materials[name] = p
			}
		}
	}
	if lightsRaw, ok := root["lights"].(Props); ok {
		for name, v := range lightsRaw {
			if p, ok := v.(Props); ok {
				cfg.Lights[name] = p
			}
		}
	}
	if medRaw, ok := root["medium"].(Props); ok {
		cfg.Medium = medRaw
	}

	for _, sp := range asPropsSlice(root["shapes"]) {
		cfg.Shapes = append(cfg.Shapes, ShapeConfig{
			Props:    sp,
			Material: getString(sp, "material", ""),
			Light:    getString(sp, "light", ""),
		})
	}

	return cfg, nil
}

// Build constructs the concrete scene.Scene described by this config:
// cameras, materials, lights, shapes and the optional medium, wired
// together and handed to scene.New.
func (c *SceneConfig) Build() (*scene.Scene, error) {
	aspect := float64(c.Width) / float64(c.Height)
	cam := scene.NewCamera(c.Camera.Eye, c.Camera.LookAt, c.Camera.Up, c.Camera.VFov, aspect)

	matNames := make([]string, 0, len(c.Materials))
	matIndex := make(map[string]int, len(c.Materials))
	materials := make([]material.Material, 0, len(c.Materials))
	for name, props := range c.Materials {
		mat, err := buildMaterial(props)
		if err != nil {
			return nil, fmt.Errorf("config: material %q: %w", name, err)
		}
		matIndex[name] = len(materials)
		materials = append(materials, mat)
		matNames = append(matNames, name)
	}

	lightNames := make([]string, 0, len(c.Lights))
	lightIndex := make(map[string]int, len(c.Lights))
	lights := make([]light.Light, 0, len(c.Lights))
	for name, props := range c.Lights {
		lt, err := buildLight(props)
		if err != nil {
			return nil, fmt.Errorf("config: light %q: %w", name, err)
		}
		lightIndex[name] = len(lights)
		lights = append(lights, lt)
		lightNames = append(lightNames, name)
	}

	var shapes []scene.Shape
	var shapeMaterial, shapeLight []int
	for i, sc := range c.Shapes {
		sh, err := buildShape(sc.Props)
		if err != nil {
			return nil, fmt.Errorf("config: shape %d: %w", i, err)
		}
		mi, ok := matIndex[sc.Material]
		if sc.Material != "" && !ok {
			return nil, fmt.Errorf("config: shape %d references unknown material %q", i, sc.Material)
		}
		if !ok {
			mi = -1
		}
		li := -1
		if sc.Light != "" {
			li, ok = lightIndex[sc.Light]
			if !ok {
				return nil, fmt.Errorf("config: shape %d references unknown light %q", i, sc.Light)
			}
		}
		shapes = append(shapes, sh)
		shapeMaterial = append(shapeMaterial, mi)
		shapeLight = append(shapeLight, li)
	}

	var med *medium.Homogeneous
	if c.Medium != nil {
		sigmaA, err := getVec3(c.Medium, "sigma_a", core.Vec3{})
		if err != nil {
			return nil, err
		}
		sigmaS, err := getVec3(c.Medium, "sigma_s", core.Vec3{})
		if err != nil {
			return nil, err
		}
		med = medium.NewHomogeneous(sigmaA, sigmaS)
	}

	return scene.New(cam, shapes, shapeMaterial, shapeLight, materials, lights, med), nil
}

func buildMaterial(p Props) (material.Material, error) {
	kind, err := requireString(p, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "material::lambertian":
		albedo, err := getVec3(p, "albedo", core.NewVec3(0.5, 0.5, 0.5))
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "material::metal":
		albedo, err := getVec3(p, "albedo", core.NewVec3(0.8, 0.8, 0.8))
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, getFloat(p, "fuzz", 0)), nil
	case "material::dielectric":
		return material.NewDielectric(getFloat(p, "ior", 1.5)), nil
	case "material::emissive":
		emission, err := getVec3(p, "emission", core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, err
		}
		return material.NewEmissive(emission), nil
	case "material::mask":
		return material.NewMask(), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", kind)
	}
}

func buildLight(p Props) (light.Light, error) {
	kind, err := requireString(p, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "light::quad":
		corner, err := getVec3(p, "corner", core.Vec3{})
		if err != nil {
			return nil, err
		}
		u, err := getVec3(p, "u", core.Vec3{})
		if err != nil {
			return nil, err
		}
		v, err := getVec3(p, "v", core.Vec3{})
		if err != nil {
			return nil, err
		}
		radiance, err := getVec3(p, "radiance", core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, err
		}
		return light.NewQuad(corner, u, v, radiance), nil
	case "light::sphere":
		center, err := getVec3(p, "center", core.Vec3{})
		if err != nil {
			return nil, err
		}
		radiance, err := getVec3(p, "radiance", core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, err
		}
		return light.NewSphere(center, getFloat(p, "radius", 1), radiance), nil
	case "light::uniform_infinite":
		radiance, err := getVec3(p, "radiance", core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, err
		}
		return light.NewUniform(radiance), nil
	case "light::gradient_infinite":
		top, err := getVec3(p, "top", core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, err
		}
		bottom, err := getVec3(p, "bottom", core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, err
		}
		return light.NewGradient(top, bottom), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", kind)
	}
}

func buildShape(p Props) (scene.Shape, error) {
	kind, err := requireString(p, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "shape::sphere":
		center, err := getVec3(p, "center", core.Vec3{})
		if err != nil {
			return nil, err
		}
		return scene.NewSphere(center, getFloat(p, "radius", 1)), nil
	case "shape::quad":
		corner, err := getVec3(p, "corner", core.Vec3{})
		if err != nil {
			return nil, err
		}
		u, err := getVec3(p, "u", core.Vec3{})
		if err != nil {
			return nil, err
		}
		v, err := getVec3(p, "v", core.Vec3{})
		if err != nil {
			return nil, err
		}
		return scene.NewQuad(corner, u, v), nil
	case "shape::triangle":
		v0, err := getVec3(p, "v0", core.Vec3{})
		if err != nil {
			return nil, err
		}
		v1, err := getVec3(p, "v1", core.Vec3{})
		if err != nil {
			return nil, err
		}
		v2, err := getVec3(p, "v2", core.Vec3{})
		if err != nil {
			return nil, err
		}
		return scene.NewTriangle(v0, v1, v2), nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", kind)
	}
}
