package geom

import (
	"fmt"
	"sort"
)

// Region is a named plane rectangle for a well-known part of the Mandelbrot
// set, usable in place of hand-typed corner coordinates.
type Region struct {
	Name string
	Desc string
	Rect Rect
}

// Classic regions and landmarks of the Mandelbrot set.
var regions = map[string]Region{
	"full": {
		Name: "full",
		Desc: "the whole set",
		Rect: Rect{UpperLeft: complex(-2.5, 1.25), LowerRight: complex(1.0, -1.25)},
	},
	"seahorse": {
		Name: "seahorse",
		Desc: "Seahorse Valley, dense filaments and repeating seahorse curls",
		Rect: Rect{UpperLeft: complex(-0.8, 0.15), LowerRight: complex(-0.7, 0.05)},
	},
	"elephant": {
		Name: "elephant",
		Desc: "Elephant Valley, large bulb with trunk-like tendrils",
		Rect: Rect{UpperLeft: complex(-1.85, -0.02), LowerRight: complex(-1.75, -0.10)},
	},
	"spiral-minibrot": {
		Name: "spiral-minibrot",
		Desc: "small Mandelbrot copy with tight spiral arms",
		Rect: Rect{UpperLeft: complex(-0.7435, 0.1325), LowerRight: complex(-0.7420, 0.1310)},
	},
	"triple-spiral": {
		Name: "triple-spiral",
		Desc: "threefold symmetric spiral structure",
		Rect: Rect{UpperLeft: complex(-0.7480, 0.0980), LowerRight: complex(-0.7450, 0.0950)},
	},
	"dragon": {
		Name: "dragon",
		Desc: "Valley of the Dragon, deep detailed spiral filaments",
		Rect: Rect{UpperLeft: complex(-0.7400, 0.1850), LowerRight: complex(-0.7350, 0.1800)},
	},
}

// LookupRegion returns the named region, or an error listing the valid names.
func LookupRegion(name string) (Region, error) {
	r, ok := regions[name]
	if !ok {
		names := make([]string, 0, len(regions))
		for n := range regions {
			names = append(names, n)
		}
		sort.Strings(names)
		return Region{}, fmt.Errorf("unknown region %q (known: %v)", name, names)
	}
	return r, nil
}

// Regions returns all named regions sorted by name.
func Regions() []Region {
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
