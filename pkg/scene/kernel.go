// Package scene implements the Kernel sampling interface every integrator
// is written against: ray generation, intersection, direction/distance/
// light sampling, transmittance evaluation, and the various contribution
// queries, transliterated from original_source/include/lm/scene.h.
package scene

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/geom"
	"github.com/lumenrender/corept/pkg/light"
	"github.com/lumenrender/corept/pkg/material"
	"github.com/lumenrender/corept/pkg/medium"
)

// Kernel is the scene sampling contract every integrator consumes.
type Kernel interface {
	PrimaryRay(rp core.Vec2) core.Ray
	SamplePrimaryRay(rng core.Sampler, window core.Vec4, aspect float64) (geom.RaySample, bool)
	SampleRay(rng core.Sampler, sp geom.SurfacePoint, wi core.Vec3) (geom.RaySample, bool)
	SampleDistance(rng core.Sampler, sp geom.SurfacePoint, wo core.Vec3) (geom.DistanceSample, bool)
	SampleLight(rng core.Sampler, sp geom.SurfacePoint) (geom.RaySample, bool)
	Intersect(ray core.Ray, tmin, tmax float64) (geom.SurfacePoint, bool)
	EvalTransmittance(rng core.Sampler, sp1, sp2 geom.SurfacePoint) (core.Vec3, bool)
	Visible(sp1, sp2 geom.SurfacePoint) bool
	IsLight(sp geom.SurfacePoint) bool
	IsSpecular(sp geom.SurfacePoint) bool
	EvalBSDF(sp geom.SurfacePoint, wi, wo core.Vec3) core.Vec3
	EvalContribEndpoint(sp geom.SurfacePoint, wo core.Vec3) core.Vec3
	EvalContrib(sp geom.SurfacePoint, wi, wo core.Vec3) core.Vec3
	Reflectance(sp geom.SurfacePoint) (core.Vec3, bool)
}

// mediumMaterialIndex marks a SurfacePoint produced by a medium scattering
// event rather than a surface hit — there is no material to look up. It is
// distinct from -1, which marks a point with no material at all (a shape
// built without one, the camera point, an infinite endpoint).
const mediumMaterialIndex = -2

// Scene is the concrete Kernel implementation: an immutable collection of
// primitives, their materials, the lights sampled by next-event
// estimation, an optional participating medium, and the BVH accelerating
// Intersect. Built once via New, then shared by read-only reference across
// every rendering worker.
type Scene struct {
	Camera *Camera

	shapes          []Shape
	shapeMaterial   []int // index into materials, per shape
	shapeLight      []int // index into lights, -1 if the shape is not a light
	materials       []material.Material
	lights          []light.Light
	infiniteLights  []light.Light
	bvh             *BVH
	medium          *medium.Homogeneous
}

// New builds a Scene from its constituent primitives. shapeMaterial and
// shapeLight must be parallel to shapes; shapeLight[i] == -1 means shape i
// is not itself a light source.
func New(camera *Camera, shapes []Shape, shapeMaterial, shapeLight []int, materials []material.Material, lights []light.Light, med *medium.Homogeneous) *Scene {
	bounds := make([]AABB, len(shapes))
	for i, s := range shapes {
		bounds[i] = s.Bounds()
	}

	var infinite []light.Light
	for _, l := range lights {
		if l.IsInfinite() {
			infinite = append(infinite, l)
		}
	}

	return &Scene{
		Camera:         camera,
		shapes:         shapes,
		shapeMaterial:  shapeMaterial,
		shapeLight:     shapeLight,
		materials:      materials,
		lights:         lights,
		infiniteLights: infinite,
		bvh:            BuildBVH(bounds),
		medium:         med,
	}
}

// PrimaryRay returns the camera ray through raster position rp in [0,1]^2.
func (s *Scene) PrimaryRay(rp core.Vec2) core.Ray {
	return s.Camera.PrimaryRay(rp)
}

// SamplePrimaryRay samples a raster position uniformly within window
// (x, y, dx, dy) and returns the resulting camera ray. A pinhole camera's
// importance is a delta function in direction, so the weight is unit.
func (s *Scene) SamplePrimaryRay(rng core.Sampler, window core.Vec4, aspect float64) (geom.RaySample, bool) {
	u1, u2 := rng.Get2D()
	rp := core.NewVec2(window.X+u1*window.Z, window.Y+u2*window.W)
	ray := s.Camera.PrimaryRay(rp)

	g := geom.NewSurfaceGeometry(ray.Origin, ray.Direction.Negate(), core.Vec2{})
	sp := geom.SurfacePoint{Geom: g, PrimitiveIndex: -1, MaterialIndex: -1}
	return geom.RaySample{SP: sp, Wo: ray.Direction, Weight: core.NewVec3(1, 1, 1)}, true
}

// SampleRay draws the next direction from sp, given the incoming direction
// wi (pointing back towards the previous vertex). At a medium scattering
// event this samples the isotropic phase function instead of a material
// BSDF.
func (s *Scene) SampleRay(rng core.Sampler, sp geom.SurfacePoint, wi core.Vec3) (geom.RaySample, bool) {
	if sp.MaterialIndex == mediumMaterialIndex {
		if s.medium == nil {
			return geom.RaySample{}, false
		}
		newWi, weight := s.medium.SamplePhase(rng, wi)
		return geom.RaySample{SP: sp, Wo: newWi, Weight: weight}, true
	}
	if sp.MaterialIndex < 0 || sp.MaterialIndex >= len(s.materials) {
		return geom.RaySample{}, false
	}
	mat := s.materials[sp.MaterialIndex]
	newWi, weight, ok := mat.Sample(rng, sp.Geom.Frame, wi)
	if !ok {
		return geom.RaySample{}, false
	}
	return geom.RaySample{SP: sp, Wo: newWi, Weight: weight}, true
}

// SampleDistance draws the next vertex along a ray from sp in direction
// wo: either a surface hit (no medium, or the ray escaped the medium's
// free-flight distance) or a scattering event inside the medium.
func (s *Scene) SampleDistance(rng core.Sampler, sp geom.SurfacePoint, wo core.Vec3) (geom.DistanceSample, bool) {
	origin := sp.Geom.P
	ray := core.NewRay(origin, wo)

	surfaceHit, hasSurface := s.Intersect(ray, 1e-4, math.Inf(1))
	tMax := math.Inf(1)
	if hasSurface {
		tMax = surfaceHit.Geom.P.Subtract(origin).Length()
	}

	if s.medium == nil {
		if !hasSurface {
			if len(s.infiniteLights) == 0 {
				return geom.DistanceSample{}, false
			}
			return geom.DistanceSample{SP: s.infiniteEndpoint(wo), Weight: core.NewVec3(1, 1, 1)}, true
		}
		return geom.DistanceSample{SP: surfaceHit, Weight: core.NewVec3(1, 1, 1)}, true
	}

	t, scattered, weight := s.medium.SampleDistance(rng, tMax)
	if scattered {
		p := ray.At(t)
		g := geom.PointGeometry{P: p, Frame: core.NewFrame(wo.Negate())}
		return geom.DistanceSample{SP: geom.SurfacePoint{Geom: g, PrimitiveIndex: -1, MaterialIndex: mediumMaterialIndex}, Weight: weight}, true
	}
	if !hasSurface {
		if len(s.infiniteLights) == 0 {
			return geom.DistanceSample{}, false
		}
		return geom.DistanceSample{SP: s.infiniteEndpoint(wo), Weight: weight}, true
	}
	return geom.DistanceSample{SP: surfaceHit, Weight: weight}, true
}

func (s *Scene) infiniteEndpoint(wo core.Vec3) geom.SurfacePoint {
	return geom.SurfacePoint{Geom: geom.NewInfiniteGeometry(wo.Negate()), PrimitiveIndex: -1, MaterialIndex: -1}
}

// SampleLight chooses a light uniformly at random and samples a point on
// it towards sp, scaling the weight by the number of lights to account for
// the light-selection pdf (1/N).
func (s *Scene) SampleLight(rng core.Sampler, sp geom.SurfacePoint) (geom.RaySample, bool) {
	if len(s.lights) == 0 {
		return geom.RaySample{}, false
	}
	idx := int(rng.Get1D() * float64(len(s.lights)))
	if idx >= len(s.lights) {
		idx = len(s.lights) - 1
	}
	ref := sp.Geom.P
	if sp.Geom.Infinite {
		ref = sp.Geom.Wo.Negate() // no finite reference point; approximate with the viewing direction
	}
	sample, ok := s.lights[idx].SampleTowards(rng, ref)
	if !ok {
		return geom.RaySample{}, false
	}
	sample.Weight = sample.Weight.Multiply(float64(len(s.lights)))
	return sample, true
}

// Intersect finds the closest shape hit along ray within [tmin, tmax].
func (s *Scene) Intersect(ray core.Ray, tmin, tmax float64) (geom.SurfacePoint, bool) {
	if tmin > tmax {
		return geom.SurfacePoint{}, false
	}
	closest := tmax
	found := false
	var best Hit
	var bestIdx int

	s.bvh.Traverse(ray, tmin, closest, func(idx int, currentMax float64) float64 {
		hit, ok := s.shapes[idx].Hit(ray, tmin, currentMax)
		if !ok {
			return currentMax
		}
		best = hit
		bestIdx = idx
		found = true
		return hit.T
	})
	if !found {
		return geom.SurfacePoint{}, false
	}

	g := geom.NewSurfaceGeometry(best.P, best.N, best.UV)
	sp := geom.SurfacePoint{
		Geom:           g,
		PrimitiveIndex: bestIdx,
		MaterialIndex:  s.shapeMaterial[bestIdx],
	}
	return sp, true
}

// EvalTransmittance evaluates the transmittance between two points,
// returning ok=false if they are mutually occluded.
func (s *Scene) EvalTransmittance(rng core.Sampler, sp1, sp2 geom.SurfacePoint) (core.Vec3, bool) {
	if !s.Visible(sp1, sp2) {
		return core.Vec3{}, false
	}
	if s.medium == nil {
		return core.NewVec3(1, 1, 1), true
	}
	dist := sp2.Geom.P.Subtract(sp1.Geom.P).Length()
	return s.medium.Transmittance(dist), true
}

// Visible reports whether sp1 and sp2 can see each other, transliterated
// from the original implementation's visible_ lambda: when sp1 is the
// infinite endpoint, roles are swapped so the finite point is always the
// ray origin.
func (s *Scene) Visible(sp1, sp2 geom.SurfacePoint) bool {
	a, b := sp1, sp2
	if a.Geom.Infinite {
		a, b = b, a
	}
	if a.Geom.Infinite {
		// both infinite: trivially visible, nothing finite to occlude.
		return true
	}

	const eps = 1e-4
	if b.Geom.Infinite {
		ray := core.NewRay(a.Geom.P, b.Geom.Wo.Negate())
		_, hit := s.Intersect(ray, eps, math.Inf(1))
		return !hit
	}

	toB := b.Geom.P.Subtract(a.Geom.P)
	dist := toB.Length()
	if dist < eps {
		return true
	}
	ray := core.NewRay(a.Geom.P, toB.Multiply(1.0/dist))
	_, hit := s.Intersect(ray, eps, dist*(1-eps))
	return !hit
}

// IsLight reports whether sp is on a shape paired with an entry of the
// scene's light list, or is the infinite endpoint and an infinite light
// exists in the scene. A shape with an emissive material but no paired
// light is not reported as a light.
func (s *Scene) IsLight(sp geom.SurfacePoint) bool {
	if sp.Geom.Infinite {
		return len(s.infiniteLights) > 0
	}
	if sp.PrimitiveIndex < 0 || sp.PrimitiveIndex >= len(s.shapeLight) {
		return false
	}
	return s.shapeLight[sp.PrimitiveIndex] != -1
}

// IsSpecular reports whether sp's material has a delta BSDF.
func (s *Scene) IsSpecular(sp geom.SurfacePoint) bool {
	if sp.MaterialIndex < 0 || sp.MaterialIndex >= len(s.materials) {
		return false
	}
	return s.materials[sp.MaterialIndex].IsSpecular()
}

// EvalBSDF evaluates the raw BSDF value f(wi, wo) at sp, with no cosine
// factor applied.
func (s *Scene) EvalBSDF(sp geom.SurfacePoint, wi, wo core.Vec3) core.Vec3 {
	if sp.MaterialIndex < 0 || sp.MaterialIndex >= len(s.materials) {
		return core.Vec3{}
	}
	return s.materials[sp.MaterialIndex].Eval(sp.Geom.Frame, wi, wo)
}

// EvalContribEndpoint returns the radiance emitted from sp towards wo,
// zero if sp is not a light.
func (s *Scene) EvalContribEndpoint(sp geom.SurfacePoint, wo core.Vec3) core.Vec3 {
	if sp.Geom.Infinite {
		total := core.Vec3{}
		for _, l := range s.infiniteLights {
			total = total.Add(l.Emission(sp.Geom, wo))
		}
		return total
	}
	if sp.PrimitiveIndex < 0 || sp.PrimitiveIndex >= len(s.shapeLight) {
		return core.Vec3{}
	}
	lightIdx := s.shapeLight[sp.PrimitiveIndex]
	if lightIdx == -1 {
		if emitter, ok := s.materialAt(sp.MaterialIndex).(material.Emitter); ok {
			return emitter.EmittedRadiance(sp.Geom.Frame, wo)
		}
		return core.Vec3{}
	}
	return s.lights[lightIdx].Emission(sp.Geom, wo)
}

// EvalContrib evaluates the extended BSDF used by next-event estimation:
// the surface BSDF times the cosine foreshortening term for wo (the
// direction towards the sampled light), or the (constant) isotropic phase
// function value inside a medium.
func (s *Scene) EvalContrib(sp geom.SurfacePoint, wi, wo core.Vec3) core.Vec3 {
	if sp.MaterialIndex == mediumMaterialIndex {
		const isotropic = 1.0 / (4 * math.Pi)
		return core.NewVec3(isotropic, isotropic, isotropic)
	}
	f := s.EvalBSDF(sp, wi, wo)
	cosTheta := math.Max(0, wo.Dot(sp.Geom.N))
	return f.Multiply(cosTheta)
}

// Reflectance returns the material's closed-form reflectance at sp, if any.
func (s *Scene) Reflectance(sp geom.SurfacePoint) (core.Vec3, bool) {
	if sp.MaterialIndex < 0 || sp.MaterialIndex >= len(s.materials) {
		return core.Vec3{}, false
	}
	return s.materials[sp.MaterialIndex].Reflectance()
}

func (s *Scene) materialAt(idx int) material.Material {
	if idx < 0 || idx >= len(s.materials) {
		return nil
	}
	return s.materials[idx]
}
