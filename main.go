package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	cfg, err := configFromFlags()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("starting CPU profile: %v", err)
		}
		defer stop()
	}

	g, err := newGame(&cfg)
	if err != nil {
		log.Fatalf("setting up simulation: %v", err)
	}
	defer g.shutdown()

	ebiten.SetWindowSize(cfg.NX*windowScale, cfg.NY*windowScale)
	if cfg.Equation == eqQuantum {
		ebiten.SetWindowTitle("Schrodinger equation in a planar domain")
	} else {
		ebiten.SetWindowTitle("Wave equation in a planar domain")
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
