package main

import (
	"fmt"
	"strings"

	"github.com/hismailbulut/geometry/pkg/common"
	"github.com/hismailbulut/geometry/pkg/logger"
	"github.com/spf13/cobra"
)

func (a *app) print(cmd *cobra.Command, r *result) error {
	return r.render(cmd.OutOrStdout(), a.cfg.Format)
}

func newBoxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "box <box>",
		Short: "Print bounds, corners and area of a box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := parseBox(args[0])
			if err != nil {
				return err
			}
			r := &result{}
			r.add("box", box)
			r.add("valid", box.Valid())
			r.add("left", box.Left())
			r.add("right", box.Right())
			r.add("top", box.Top())
			r.add("bottom", box.Bottom())
			r.add("top left", box.TopLeft())
			r.add("top right", box.TopRight())
			r.add("bottom right", box.BottomRight())
			r.add("bottom left", box.BottomLeft())
			r.add("area", box.Area())
			r.add("size", box.ToSize())
			return a.print(cmd, r)
		},
	}
}

func newContainsCmd(a *app) *cobra.Command {
	var fuzzy float64
	cmd := &cobra.Command{
		Use:   "contains <box> <box|point>",
		Short: "Check whether a box contains another box or a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := parseBox(args[0])
			if err != nil {
				return err
			}
			r := &result{}
			if strings.Count(args[1], ",") == 3 {
				other, err := parseBox(args[1])
				if err != nil {
					return err
				}
				r.add("contains", box.Contains(other))
				r.add("included", box.Includes(other))
				return a.print(cmd, r)
			}
			point, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			r.add("contains", box.ContainsPoint(point))
			if fuzzy != 0 {
				r.add("fuzzy contains", box.FuzzyContains(point, fuzzy))
			}
			return a.print(cmd, r)
		},
	}
	cmd.Flags().Float64Var(&fuzzy, "fuzzy", 0, "also test the point against the box grown by this threshold")
	return cmd
}

func newIntersectsCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "intersects <box> <box>",
		Short: "Check whether two boxes overlap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, other, err := parseBoxPair(args)
			if err != nil {
				return err
			}
			r := &result{}
			r.add("intersects", box.Intersects(other, strict))
			r.add("strict", strict)
			return a.print(cmd, r)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "boxes touching on an edge do not intersect")
	return cmd
}

func newIntersectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <box> <box>",
		Short: "Compute the overlapping box",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, other, err := parseBoxPair(args)
			if err != nil {
				return err
			}
			overlap := box.Intersect(other)
			if !overlap.Valid() {
				logger.LogF(logger.DEBUG, "%v and %v do not overlap", box, other)
			}
			r := &result{}
			r.add("intersection", overlap)
			r.add("valid", overlap.Valid())
			r.add("area", overlap.Area())
			return a.print(cmd, r)
		},
	}
}

func newNearestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <box> <point>",
		Short: "Project a point onto a box",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := parseBox(args[0])
			if err != nil {
				return err
			}
			point, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			nearest := box.NearestPoint(point)
			r := &result{}
			r.add("nearest", nearest)
			r.add("distance", common.Distance(point, nearest))
			return a.print(cmd, r)
		},
	}
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <box> <factor>",
		Short: "Scale the extent of a box around its center",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := parseBox(args[0])
			if err != nil {
				return err
			}
			factor, err := parseScalar(args[1])
			if err != nil {
				return fmt.Errorf("factor: %w", err)
			}
			r := &result{}
			r.add("scaled", box.Scale(factor))
			return a.print(cmd, r)
		},
	}
}

func newFromSizeCmd(a *app) *cobra.Command {
	var origin bool
	cmd := &cobra.Command{
		Use:   "fromsize <size>",
		Short: "Build a box from a size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[0])
			if err != nil {
				return err
			}
			box := common.FromSize[float64](size, origin)
			r := &result{}
			r.add("size", size)
			r.add("box", box)
			r.add("pixels", box.ToRectangle())
			return a.print(cmd, r)
		},
	}
	cmd.Flags().BoolVar(&origin, "origin", false, "center the box on the origin instead of spanning [0, w] x [0, h]")
	return cmd
}

func newEqualsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equals <box> <box>",
		Short: "Compare two boxes within the configured epsilon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, other, err := parseBoxPair(args)
			if err != nil {
				return err
			}
			r := &result{}
			r.add("equal", box.EqualsEps(other, a.cfg.Epsilon))
			r.add("epsilon", a.cfg.Epsilon)
			return a.print(cmd, r)
		},
	}
}

func newVectorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vector <point>",
		Short: "Print length and direction of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			normalized := v
			length := normalized.Normalize()
			r := &result{}
			r.add("vector", v)
			r.add("length", length)
			r.add("length squared", v.LengthSquared())
			r.add("normalized", normalized)
			r.add("perpendicular", v.Perpendicular())
			return a.print(cmd, r)
		},
	}
}

func newAngleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "angle <deg|rad> <value>",
		Short:     "Convert an angle between degrees and radians",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"deg", "rad"},
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseScalar(args[1])
			if err != nil {
				return fmt.Errorf("angle: %w", err)
			}
			r := &result{}
			switch args[0] {
			case "deg":
				r.add("radians", common.DegToRad(float32(value)))
			case "rad":
				r.add("degrees", common.RadToDeg(float32(value)))
			default:
				return fmt.Errorf("unknown angle unit %q, expected deg or rad", args[0])
			}
			return a.print(cmd, r)
		},
	}
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <point> <point>",
		Short: "Euclidean distance between two points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, p2, err := parsePointPair(args)
			if err != nil {
				return err
			}
			r := &result{}
			r.add("distance", common.Distance(p1, p2))
			r.add("distance squared", common.DistanceSquared(p1, p2))
			return a.print(cmd, r)
		},
	}
}

func newDirectionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "direction <from> <to>",
		Short: "Unit direction, distance and angle from one point to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, p2, err := parsePointPair(args)
			if err != nil {
				return err
			}
			threshold := float32(a.cfg.Threshold)
			dir, dist, ok := common.ToDirection(toFloat32(p1), toFloat32(p2), threshold)
			if !ok {
				logger.LogF(logger.WARN, "Points are closer than %v, direction is not normalized", threshold)
			}
			r := &result{}
			r.add("direction", dir)
			r.add("distance", dist)
			r.add("normalized", ok)
			r.add("angle", common.AngleBetween(toFloat32(p1), toFloat32(p2), threshold))
			return a.print(cmd, r)
		},
	}
}

func newConeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cone <origin> <direction> <aperture-deg> <point>",
		Short: "Check whether a point lies in a cone",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := parsePoint(args[0])
			if err != nil {
				return fmt.Errorf("origin: %w", err)
			}
			dir, err := parsePoint(args[1])
			if err != nil {
				return fmt.Errorf("direction: %w", err)
			}
			aperture, err := parseScalar(args[2])
			if err != nil {
				return fmt.Errorf("aperture: %w", err)
			}
			point, err := parsePoint(args[3])
			if err != nil {
				return err
			}
			inside := common.IsInCone(toFloat32(origin), float32(dir.X), float32(dir.Y), common.DegToRad(float32(aperture)), toFloat32(point))
			r := &result{}
			r.add("inside", inside)
			return a.print(cmd, r)
		},
	}
}

func parseBoxPair(args []string) (common.Box[float64], common.Box[float64], error) {
	box, err := parseBox(args[0])
	if err != nil {
		return box, box, err
	}
	other, err := parseBox(args[1])
	return box, other, err
}

func parsePointPair(args []string) (common.Vector2[float64], common.Vector2[float64], error) {
	p1, err := parsePoint(args[0])
	if err != nil {
		return p1, p1, err
	}
	p2, err := parsePoint(args[1])
	return p1, p2, err
}
