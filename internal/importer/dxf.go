package importer

import (
	"fmt"
	"math"

	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ImportDXF imports candidate centers from a DXF file drawn in tile units.
// Each CIRCLE, POINT, or LWPOLYLINE marks one candidate: the circle center,
// the point itself, or the middle of the polyline's bounding box. Positions
// are rounded to the nearest tile. Entities appear in drawing order.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	skipped := 0
	rounded := 0
	for _, ent := range entities {
		var x, y float64
		switch e := ent.(type) {
		case *entity.Circle:
			x, y = e.Center[0], e.Center[1]

		case *entity.Point:
			x, y = e.Coord[0], e.Coord[1]

		case *entity.LwPolyline:
			if len(e.Vertices) == 0 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE without vertices")
				continue
			}
			x, y = polylineMidpoint(e)

		default:
			skipped++
			continue
		}

		center, exact, err := snapToTile(x, y)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Skipped entity: %v", err))
			continue
		}
		if !exact {
			rounded++
		}
		result.Candidates = append(result.Candidates, center)
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped %d entities that do not mark a center", skipped))
	}
	if rounded > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Rounded %d positions to the nearest tile", rounded))
	}
	if len(result.Candidates) == 0 {
		result.Errors = append(result.Errors, "No circles, points or polylines found in DXF file")
	}

	return result
}

// polylineMidpoint returns the center of the polyline's bounding box.
func polylineMidpoint(lw *entity.LwPolyline) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range lw.Vertices {
		minX = math.Min(minX, v[0])
		maxX = math.Max(maxX, v[0])
		minY = math.Min(minY, v[1])
		maxY = math.Max(maxY, v[1])
	}
	return (minX + maxX) / 2, (minY + maxY) / 2
}

// snapToTile rounds a drawing position to the nearest tile and reports whether
// it already sat on one. Positions beyond model.MaxCoordinate fail with
// model.ErrCoordinateRange.
func snapToTile(x, y float64) (model.Vector2, bool, error) {
	const tolerance = 1e-6
	rx, ry := math.Round(x), math.Round(y)
	if math.Abs(rx) > model.MaxCoordinate || math.Abs(ry) > model.MaxCoordinate {
		return model.Vector2{}, false, fmt.Errorf("%w: (%g, %g)", model.ErrCoordinateRange, x, y)
	}
	exact := math.Abs(rx-x) < tolerance && math.Abs(ry-y) < tolerance
	return model.Vec(int(rx), int(ry)), exact, nil
}
