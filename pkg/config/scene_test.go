package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lumenrender/corept/pkg/core"
)

const testSceneYAML = `
width: 32
height: 32
camera:
  eye: [0, 0, 5]
  look_at: [0, 0, 0]
  vfov: 40
materials:
  wall:
    type: material::lambertian
    albedo: [0.7, 0.7, 0.7]
  glow:
    type: material::emissive
    emission: [4, 4, 4]
lights:
  ceiling:
    type: light::quad
    corner: [-1, 2, -1]
    u: [2, 0, 0]
    v: [0, 0, 2]
    radiance: [4, 4, 4]
shapes:
  - type: shape::sphere
    center: [0, 0, 0]
    radius: 1
    material: wall
  - type: shape::quad
    corner: [-1, 2, -1]
    u: [2, 0, 0]
    v: [0, 0, 2]
    material: glow
    light: ceiling
`

func writeTempScene(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing temp scene file: %v", err)
	}
	return path
}

func TestLoadSceneFileDecodesCameraAndDimensions(t *testing.T) {
	path := writeTempScene(t, testSceneYAML)

	cfg, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("LoadSceneFile: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Errorf("expected 32x32, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Camera.VFov != 40 {
		t.Errorf("expected vfov 40, got %v", cfg.Camera.VFov)
	}
	if len(cfg.Materials) != 2 {
		t.Errorf("expected 2 materials, got %d", len(cfg.Materials))
	}
	if len(cfg.Lights) != 1 {
		t.Errorf("expected 1 light, got %d", len(cfg.Lights))
	}
	if len(cfg.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(cfg.Shapes))
	}
	if cfg.Shapes[1].Light != "ceiling" {
		t.Errorf("expected shape 1 to reference light %q, got %q", "ceiling", cfg.Shapes[1].Light)
	}
}

func TestSceneConfigBuildProducesRenderableScene(t *testing.T) {
	path := writeTempScene(t, testSceneYAML)
	cfg, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("LoadSceneFile: %v", err)
	}

	sc, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	ray := sc.PrimaryRay(core.NewVec2(0.5, 0.5))
	if ray.Direction.IsZero() {
		t.Error("expected a non-degenerate primary ray through the image center")
	}

	hit, ok := sc.Intersect(ray, 1e-4, 1e30)
	if !ok {
		t.Fatal("expected the primary ray to hit the sphere")
	}
	if sc.IsLight(hit) {
		t.Error("the sphere shape should not itself be a light")
	}
}

func TestSceneConfigBuildRejectsUnknownMaterialReference(t *testing.T) {
	cfg, err := LoadSceneFile(writeTempScene(t, `
width: 8
height: 8
camera:
  eye: [0, 0, 1]
shapes:
  - type: shape::sphere
    center: [0, 0, 0]
    radius: 1
    material: missing
`))
	if err != nil {
		t.Fatalf("LoadSceneFile: %v", err)
	}
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected an error for an unknown material reference")
	}
}

func TestLoadRendererConfigReadsPTNaiveFields(t *testing.T) {
	cfg, err := LoadRendererConfig(Props{
		"spp":       int(64),
		"maxLength": int(5),
	}, "renderer::pt_naive")
	if err != nil {
		t.Fatalf("LoadRendererConfig: %v", err)
	}
	if cfg.SPP != 64 {
		t.Errorf("expected spp=64, got %d", cfg.SPP)
	}
	if cfg.MaxLength != 5 {
		t.Errorf("expected maxLength=5, got %d", cfg.MaxLength)
	}
}

func TestLoadRendererConfigReadsRaycastFields(t *testing.T) {
	cfg, err := LoadRendererConfig(Props{
		"use_constant_color": true,
		"bg_color":           []any{0.1, 0.2, 0.3},
	}, "renderer::raycast")
	if err != nil {
		t.Fatalf("LoadRendererConfig: %v", err)
	}
	if !cfg.UseConstantColor {
		t.Error("expected UseConstantColor=true")
	}
	if cfg.BGColor.X != 0.1 || cfg.BGColor.Y != 0.2 || cfg.BGColor.Z != 0.3 {
		t.Errorf("unexpected bg color: %v", cfg.BGColor)
	}
}
