package scene

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lumenrender/corept/pkg/core"
)

// LoadOBJ reads a minimal subset of the Wavefront OBJ format: "v x y z"
// vertex positions and "f i j k ..." polygonal faces (triangulated as a
// fan), enough to drive the raycast example driver against an arbitrary
// mesh. Materials, normals, and UVs in the file are ignored — every face
// becomes a flat-shaded Triangle.
func LoadOBJ(path string) ([]*Triangle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer file.Close()

	var vertices []core.Vec3
	var triangles []*Triangle

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("scene: %s:%d: malformed vertex line %q", path, lineNo, line)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("scene: %s:%d: malformed vertex coordinates", path, lineNo)
			}
			vertices = append(vertices, core.NewVec3(x, y, z))
		case "f":
			indices := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				idxStr := strings.SplitN(f, "/", 2)[0]
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("scene: %s:%d: malformed face index %q", path, lineNo, f)
				}
				if idx < 0 {
					idx = len(vertices) + idx + 1
				}
				if idx < 1 || idx > len(vertices) {
					return nil, fmt.Errorf("scene: %s:%d: face index %d out of range", path, lineNo, idx)
				}
				indices = append(indices, idx-1)
			}
			for i := 1; i+1 < len(indices); i++ {
				triangles = append(triangles, NewTriangle(vertices[indices[0]], vertices[indices[i]], vertices[indices[i+1]]))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return triangles, nil
}
