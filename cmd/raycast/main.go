// Command raycast renders an OBJ mesh with the deterministic raycast
// integrator, following the positional-argument contract of the original
// example/raycast.cpp: obj out w h eye_x eye_y eye_z lookat_x lookat_y
// lookat_z vfov.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/film"
	"github.com/lumenrender/corept/pkg/integrator"
	"github.com/lumenrender/corept/pkg/material"
	"github.com/lumenrender/corept/pkg/scene"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "raycast: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 11 {
		return fmt.Errorf("usage: raycast obj out w h eye_x eye_y eye_z lookat_x lookat_y lookat_z vfov")
	}

	objPath := args[0]
	outPath := args[1]

	w, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("parsing w: %w", err)
	}
	h, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("parsing h: %w", err)
	}

	nums := make([]float64, 7)
	for i := range nums {
		n, err := strconv.ParseFloat(args[4+i], 64)
		if err != nil {
			return fmt.Errorf("parsing numeric argument %d: %w", 4+i, err)
		}
		nums[i] = n
	}
	eye := core.NewVec3(nums[0], nums[1], nums[2])
	lookAt := core.NewVec3(nums[3], nums[4], nums[5])
	vfov := nums[6]

	fmt.Printf("Loading mesh: %s...\n", objPath)
	triangles, err := scene.LoadOBJ(objPath)
	if err != nil {
		return fmt.Errorf("loading OBJ mesh: %w", err)
	}

	// The whole mesh shares one white Lambertian material, so the raycast
	// shading (reflectance times viewing cosine) shows the surface.
	materials := []material.Material{material.NewLambertian(core.NewVec3(1, 1, 1))}
	shapes := make([]scene.Shape, len(triangles))
	shapeMaterial := make([]int, len(triangles))
	shapeLight := make([]int, len(triangles))
	for i, t := range triangles {
		shapes[i] = t
		shapeMaterial[i] = 0
		shapeLight[i] = -1
	}

	aspect := float64(w) / float64(h)
	camera := scene.NewCamera(eye, lookAt, core.NewVec3(0, 1, 0), vfov, aspect)
	sc := scene.New(camera, shapes, shapeMaterial, shapeLight, materials, nil, nil)

	f := film.New(w, h)
	cfg := integrator.DefaultConfig()
	r := &integrator.Raycast{Config: cfg}

	fmt.Println("Rendering...")
	if err := r.Render(context.Background(), sc, f); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Printf("Saving to %s...\n", outPath)
	if err := f.Save(outPath, film.FormatPFM); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	fmt.Println("Done.")
	return nil
}
