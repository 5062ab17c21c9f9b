package main

import "testing"

func TestDomainClassifierShapes(t *testing.T) {
	cases := []struct {
		domain string
		lambda float64
		mu     float64
		npoly  int
		x, y   float64
		want   uint8
	}{
		{domain: "rectangle", lambda: 1.0, x: 0, y: 0, want: cellMediumA},
		{domain: "rectangle", lambda: 1.0, x: 1.5, y: 0, want: cellOutside},
		{domain: "rectangle", lambda: 1.0, x: 0, y: 1.5, want: cellOutside},

		{domain: "ellipse", lambda: 1.0, x: 0.9, y: 0, want: cellMediumA},
		{domain: "ellipse", lambda: 1.0, x: 0, y: 1.1, want: cellOutside},
		{domain: "ellipse", lambda: 2.0, x: 1.5, y: 0, want: cellMediumA},

		{domain: "stadium", lambda: 1.0, x: 0, y: 0.5, want: cellMediumA},
		{domain: "stadium", lambda: 1.0, x: 1.5, y: 0, want: cellMediumA},
		{domain: "stadium", lambda: 1.0, x: 2.1, y: 0, want: cellOutside},
		{domain: "stadium", lambda: 1.0, x: 1.8, y: 0.8, want: cellOutside},

		{domain: "sinai", lambda: 0.5, x: 0, y: 0, want: cellOutside},
		{domain: "sinai", lambda: 0.5, x: 1.0, y: 0, want: cellMediumA},

		{domain: "annulus", lambda: 0.5, x: 0.7, y: 0, want: cellMediumA},
		{domain: "annulus", lambda: 0.5, x: 0.2, y: 0, want: cellOutside},
		{domain: "annulus", lambda: 0.5, x: 1.2, y: 0, want: cellOutside},

		{domain: "polygon", lambda: 1.0, npoly: 4, x: 0.5, y: 0, want: cellMediumA},
		{domain: "polygon", lambda: 1.0, npoly: 4, x: 0.9, y: 0.9, want: cellOutside},
		{domain: "polygon", lambda: 1.0, npoly: 6, x: 0, y: 0, want: cellMediumA},

		{domain: "young", lambda: 0.5, mu: 0.05, x: 1.0, y: 0, want: cellMediumA},
		{domain: "young", lambda: 0.5, mu: 0.05, x: 0, y: 0.5, want: cellMediumA},
		{domain: "young", lambda: 0.5, mu: 0.05, x: 0, y: -0.5, want: cellMediumA},
		{domain: "young", lambda: 0.5, mu: 0.05, x: 0, y: 0, want: cellOutside},

		{domain: "flat", lambda: 0.0, x: -1.0, y: 0, want: cellMediumA},
		{domain: "flat", lambda: 0.0, x: 1.0, y: 0, want: cellMediumB},
	}
	for _, tc := range cases {
		cfg := defaultConfig()
		cfg.Lambda = tc.lambda
		cfg.Mu = tc.mu
		if tc.npoly != 0 {
			cfg.NPoly = tc.npoly
		}
		classify, err := domainClassifier(tc.domain, &cfg)
		if err != nil {
			t.Fatalf("%s: %v", tc.domain, err)
		}
		if got := classify(tc.x, tc.y); got != tc.want {
			t.Fatalf("%s(lambda=%g): point (%g,%g) classified as %d, want %d",
				tc.domain, tc.lambda, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestDomainClassifierUnknown(t *testing.T) {
	cfg := defaultConfig()
	if _, err := domainClassifier("klein-bottle", &cfg); err == nil {
		t.Fatalf("unknown domain accepted")
	}
}

func TestDomainClassifierPolygonTooFewSides(t *testing.T) {
	cfg := defaultConfig()
	cfg.NPoly = 2
	if _, err := domainClassifier("polygon", &cfg); err == nil {
		t.Fatalf("2-sided polygon accepted")
	}
}
