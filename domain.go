package main

import (
	"fmt"
	"math"
)

// domainClassifier returns the inside/outside predicate for the named
// billiard shape. Coordinates are physical; every classifier is pure and is
// evaluated exactly once per lattice point when the mask is built.
func domainClassifier(name string, cfg *simConfig) (func(x, y float64) uint8, error) {
	lambda, mu := cfg.Lambda, cfg.Mu
	switch name {
	case "rectangle":
		return func(x, y float64) uint8 {
			if math.Abs(x) < lambda && math.Abs(y) < 1.0 {
				return cellMediumA
			}
			return cellOutside
		}, nil

	case "ellipse":
		return func(x, y float64) uint8 {
			if x*x/(lambda*lambda)+y*y < 1.0 {
				return cellMediumA
			}
			return cellOutside
		}, nil

	case "stadium":
		// Rectangle of half-length lambda capped by unit half-discs.
		return func(x, y float64) uint8 {
			if math.Abs(x) < lambda && math.Abs(y) < 1.0 {
				return cellMediumA
			}
			dx := math.Abs(x) - lambda
			if dx >= 0 && dx*dx+y*y < 1.0 {
				return cellMediumA
			}
			return cellOutside
		}, nil

	case "sinai":
		// The whole simulation rectangle minus a central disc of radius
		// lambda.
		return func(x, y float64) uint8 {
			if x*x+y*y >= lambda*lambda {
				return cellMediumA
			}
			return cellOutside
		}, nil

	case "annulus":
		return func(x, y float64) uint8 {
			r2 := x*x + y*y
			if r2 > lambda*lambda && r2 < 1.0 {
				return cellMediumA
			}
			return cellOutside
		}, nil

	case "polygon":
		if cfg.NPoly < 3 {
			return nil, fmt.Errorf("polygon billiard needs at least 3 sides, got %d", cfg.NPoly)
		}
		np := float64(cfg.NPoly)
		rot := cfg.APoly * math.Pi / 2.0
		sector := 2.0 * math.Pi / np
		apothem := lambda * math.Cos(math.Pi/np)
		return func(x, y float64) uint8 {
			r := math.Hypot(x, y)
			if r == 0 {
				return cellMediumA
			}
			theta := math.Atan2(y, x) - rot
			theta = math.Mod(math.Mod(theta, sector)+sector, sector) - sector/2.0
			if r*math.Cos(theta) < apothem {
				return cellMediumA
			}
			return cellOutside
		}, nil

	case "young":
		// Double slit: a vertical wall of half-width mu at x=0, pierced by
		// two openings of half-height mu centered at y = +-lambda.
		return func(x, y float64) uint8 {
			if math.Abs(x) >= mu {
				return cellMediumA
			}
			if math.Abs(math.Abs(y)-lambda) < mu {
				return cellMediumA
			}
			return cellOutside
		}, nil

	case "flat":
		// Two-media interface at x = lambda; everything is inside, the
		// mask only switches the medium.
		return func(x, y float64) uint8 {
			if x < lambda {
				return cellMediumA
			}
			return cellMediumB
		}, nil
	}
	return nil, fmt.Errorf("unknown billiard domain %q", name)
}
