package scene

import (
	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/light"
	"github.com/lumenrender/corept/pkg/material"
)

// NewCornellBox builds the classic one-light Cornell box test scene: five
// quad walls, a quad ceiling light, and two spheres (one metal, one
// glass), at the standard 555x555x555 dimensions. It is the fixture the
// integrator convergence tests render against.
func NewCornellBox(width, height int) *Scene {
	aspect := float64(width) / float64(height)
	camera := NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40.0,
		aspect,
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	metal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0)
	glass := material.NewDielectric(1.5)

	const boxSize = 555.0

	floor := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize))
	ceiling := NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize))
	backWall := NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0))
	leftWall := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0))
	rightWall := NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize))

	const lightSize = 130.0
	const lightOffset = (boxSize - lightSize) / 2.0
	lightEmission := core.NewVec3(15, 15, 15)
	ceilingLightQuad := NewQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
	)
	ceilingLightMat := material.NewEmissive(lightEmission)
	ceilingLight := light.NewQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		lightEmission,
	)

	leftSphere := NewSphere(core.NewVec3(185, 82.5, 169), 82.5)
	rightSphere := NewSphere(core.NewVec3(370, 90, 351), 90)

	shapes := []Shape{floor, ceiling, backWall, leftWall, rightWall, ceilingLightQuad, leftSphere, rightSphere}
	materials := []material.Material{white, white, white, red, green, ceilingLightMat, metal, glass}
	shapeMaterial := []int{0, 1, 2, 3, 4, 5, 6, 7}
	shapeLight := []int{-1, -1, -1, -1, -1, 0, -1, -1}
	lights := []light.Light{ceilingLight}

	return New(camera, shapes, shapeMaterial, shapeLight, materials, lights, nil)
}
