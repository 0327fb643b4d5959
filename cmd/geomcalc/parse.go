package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hismailbulut/geometry/pkg/common"
)

// parseFloats parses exactly n comma separated numbers.
func parseFloats(arg string, n int) ([]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %d in %q", n, len(parts), arg)
	}
	values := make([]float64, n)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", part, err)
		}
		values[i] = value
	}
	return values, nil
}

func parseBox(arg string) (common.Box[float64], error) {
	v, err := parseFloats(arg, 4)
	if err != nil {
		return common.Box[float64]{}, fmt.Errorf("box: %w", err)
	}
	return common.NewBox(v[0], v[1], v[2], v[3]), nil
}

func parsePoint(arg string) (common.Vector2[float64], error) {
	v, err := parseFloats(arg, 2)
	if err != nil {
		return common.Vector2[float64]{}, fmt.Errorf("point: %w", err)
	}
	return common.Vec2(v[0], v[1]), nil
}

func parseSize(arg string) (common.Size[float64], error) {
	v, err := parseFloats(arg, 2)
	if err != nil {
		return common.Size[float64]{}, fmt.Errorf("size: %w", err)
	}
	return common.Sz(v[0], v[1]), nil
}

func parseScalar(arg string) (float64, error) {
	v, err := parseFloats(arg, 1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

func toFloat32(v common.Vector2[float64]) common.Vector2[float32] {
	return common.Vec2(float32(v.X), float32(v.Y))
}
