package main

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*simConfig)
	}{
		{"grid too small", func(c *simConfig) { c.NX = 2 }},
		{"degenerate extents", func(c *simConfig) { c.XMax = c.XMin }},
		{"nonpositive courant", func(c *simConfig) { c.Courant = 0 }},
		{"nonpositive courant B with two speeds", func(c *simConfig) {
			c.TwoSpeeds = true
			c.CourantB = -1
		}},
		{"quantum with mixed boundary", func(c *simConfig) {
			c.Equation = eqQuantum
			c.Boundary = bcMixed
		}},
		{"quantum with two speeds", func(c *simConfig) {
			c.Equation = eqQuantum
			c.TwoSpeeds = true
		}},
		{"quantum with nonpositive dt", func(c *simConfig) {
			c.Equation = eqQuantum
			c.DT = 0
		}},
		{"quantum with nonpositive hbar", func(c *simConfig) {
			c.Equation = eqQuantum
			c.Hbar = 0
		}},
		{"floor without vmax", func(c *simConfig) {
			c.Floor = true
			c.VMax = 0
		}},
		{"unknown initial condition", func(c *simConfig) { c.InitShape = "spiral" }},
		{"zero steps per frame", func(c *simConfig) { c.StepsPerFrame = 0 }},
		{"negative source period", func(c *simConfig) { c.SourcePeriod = -1 }},
	}
	for _, tc := range cases {
		cfg := defaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: config accepted", tc.name)
		}
	}
}

func TestParseEquation(t *testing.T) {
	if eq, err := parseEquation("Wave"); err != nil || eq != eqWave {
		t.Fatalf("parseEquation(Wave) = %v, %v", eq, err)
	}
	if eq, err := parseEquation("schrodinger"); err != nil || eq != eqQuantum {
		t.Fatalf("parseEquation(schrodinger) = %v, %v", eq, err)
	}
	if _, err := parseEquation("heat"); err == nil {
		t.Fatalf("parseEquation accepted an unknown family")
	}
}

func TestParseBoundary(t *testing.T) {
	cases := map[string]boundaryCond{
		"dirichlet": bcDirichlet,
		"periodic":  bcPeriodic,
		"absorbing": bcAbsorbing,
		"mixed":     bcMixed,
		"vper-habs": bcMixed,
	}
	for s, want := range cases {
		bc, err := parseBoundary(s)
		if err != nil || bc != want {
			t.Fatalf("parseBoundary(%s) = %v, %v", s, bc, err)
		}
	}
	if _, err := parseBoundary("neumann"); err == nil {
		t.Fatalf("parseBoundary accepted an unknown condition")
	}
}
