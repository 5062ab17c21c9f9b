package main

import "testing"

func TestBuildRowMasksSplitsAroundHole(t *testing.T) {
	// Column 5 is a wall; interior spans must break around it.
	rows := buildRowMasks(10, 6, false, func(x, y int) bool { return x != 5 })
	if len(rows) != 4 {
		t.Fatalf("got %d interior rows, want 4", len(rows))
	}
	for _, row := range rows {
		if row.y < 1 || row.y > 4 {
			t.Fatalf("row %d outside the interior range", row.y)
		}
		want := []span{{start: 1, end: 4}, {start: 6, end: 8}}
		if len(row.spans) != len(want) {
			t.Fatalf("row %d: got %d spans, want %d", row.y, len(row.spans), len(want))
		}
		for k, sp := range row.spans {
			if sp != want[k] {
				t.Fatalf("row %d span %d = %+v, want %+v", row.y, k, sp, want[k])
			}
		}
	}
}

func TestBuildRowMasksFullGrid(t *testing.T) {
	rows := buildRowMasks(6, 3, true, func(x, y int) bool { return true })
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for _, row := range rows {
		if len(row.spans) != 1 || row.spans[0].start != 0 || row.spans[0].end != 5 {
			t.Fatalf("row %d spans = %+v, want a single span 0..5", row.y, row.spans)
		}
	}
}

func TestBuildRowMasksSkipsEmptyRows(t *testing.T) {
	rows := buildRowMasks(8, 8, false, func(x, y int) bool { return y == 3 })
	if len(rows) != 1 || rows[0].y != 3 {
		t.Fatalf("got rows %+v, want a single mask for row 3", rows)
	}
}

func TestAssignRowMasksRoundRobin(t *testing.T) {
	rows := make([]rowMask, 5)
	for i := range rows {
		rows[i].y = i
	}
	masks := assignRowMasks(2, rows)
	if len(masks) != 2 {
		t.Fatalf("got %d worker masks, want 2", len(masks))
	}
	if len(masks[0].rows) != 3 || len(masks[1].rows) != 2 {
		t.Fatalf("row distribution %d/%d, want 3/2", len(masks[0].rows), len(masks[1].rows))
	}
}

func TestBuildMaskEllipse(t *testing.T) {
	cfg := defaultConfig()
	cfg.Domain = "ellipse"
	lat := newLattice(cfg.NX, cfg.NY, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	classify, err := domainClassifier(cfg.Domain, &cfg)
	if err != nil {
		t.Fatalf("classifier: %v", err)
	}
	mask := buildMask(lat, classify)

	ci, cj := lat.toIJ(0, 0)
	if !mask.insideAt(ci, cj) {
		t.Fatalf("ellipse center classified as outside")
	}
	if mask.insideAt(0, 0) || mask.insideAt(cfg.NX-1, cfg.NY-1) {
		t.Fatalf("grid corners classified as inside the ellipse")
	}
	if mask.inside == 0 || mask.inside == cfg.NX*cfg.NY {
		t.Fatalf("inside count %d is degenerate", mask.inside)
	}
}
