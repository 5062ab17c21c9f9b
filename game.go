package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Physical drop locations of the default initial condition and of the
// periodically re-injected source.
const (
	dropX = 0.2
	dropY = 0.4

	counterDropX = -0.2
	counterDropY = -0.4

	sourceX = -1.0
	sourceY = 0.0

	// planarX is where the planar initial wave front is centered.
	planarX = -0.5
)

// Game owns the engine state and drives it from the ebiten loop: a batch of
// stencil steps per tick, one statistics pass per frame, then rendering from
// the settled front buffers.
type Game struct {
	cfg   *simConfig
	lat   *lattice
	mask  *domainMask
	field *fieldState
	sim   *stepper

	scale           float64
	frame           int
	stepsPerFrame   int
	lastSimDuration time.Duration

	pixels   []byte
	exporter *frameExporter

	probeIdx    int
	audioCtx    *audio.Context
	audioStream *probeStream
	audioPlayer *audio.Player
}

// newGame builds the lattice, mask, field and stepper from a validated
// config and wires the optional exporter and audio probe.
func newGame(cfg *simConfig) (*Game, error) {
	lat := newLattice(cfg.NX, cfg.NY, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	classify, err := domainClassifier(cfg.Domain, cfg)
	if err != nil {
		return nil, err
	}
	mask := buildMask(lat, classify)
	log.Printf("domain %q: %d of %d cells inside", cfg.Domain, mask.inside, cfg.NX*cfg.NY)

	field := newFieldState(cfg.NX, cfg.NY)
	var probeX, probeY float64
	if cfg.Equation == eqQuantum {
		initCoherentState(field, lat, mask, coherentX, coherentY, coherentPX, coherentPY, coherentScale)
		probeX, probeY = coherentX, coherentY
	} else if cfg.InitShape == "planar" {
		initPlanarWave(field, lat, mask, planarX)
		probeX, probeY = planarX, 0
	} else {
		initCircularWave(field, lat, mask, dropX, dropY)
		addCircularWave(field, lat, mask, -1.0, counterDropX, counterDropY)
		probeX, probeY = dropX, dropY
	}

	g := &Game{
		cfg:           cfg,
		lat:           lat,
		mask:          mask,
		field:         field,
		sim:           newStepper(cfg, lat, mask, field),
		scale:         1.0,
		stepsPerFrame: cfg.StepsPerFrame,
	}
	pi, pj := lat.toIJ(probeX, probeY)
	g.probeIdx = lat.idx(pi, pj)

	if *saveFramesFlag != "" {
		exporter, err := newFrameExporter(*saveFramesFlag)
		if err != nil {
			return nil, err
		}
		g.exporter = exporter
	}

	if *enableAudioFlag {
		g.audioCtx = audio.NewContext(audioSampleRate)
		g.audioStream = newProbeStream()
		player, err := g.audioCtx.NewPlayer(g.audioStream)
		if err != nil {
			log.Printf("audio player creation failed: %v", err)
		} else {
			g.audioPlayer = player
			g.audioPlayer.Play()
		}
	}
	return g, nil
}

// Update advances the simulation by the configured batch of steps and
// refreshes the per-frame statistics.
func (g *Game) Update() error {
	g.handleDebugControls()

	simStart := time.Now()
	for i := 0; i < g.stepsPerFrame; i++ {
		g.sim.step()
	}
	g.lastSimDuration = time.Since(simStart)

	variance := fieldVariance(g.field, g.mask, g.cfg.Equation)
	g.scale = displayScale(variance)
	if g.cfg.Equation == eqQuantum {
		renormalizeField(g.field, g.mask, variance)
	}

	g.frame++
	if g.cfg.SourcePeriod > 0 && g.frame%g.cfg.SourcePeriod == g.cfg.SourcePeriod-1 {
		addCircularWave(g.field, g.lat, g.mask, 1.0, sourceX, sourceY)
	}

	if g.audioStream != nil {
		g.audioStream.SetSample(float32(g.field.front.phi[g.probeIdx] / g.scale))
	}
	return nil
}

// Layout reports the logical screen size used by ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.cfg.NX, g.cfg.NY }

// handleDebugControls processes overlay hotkeys adjusting the step batch.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustStepsPerFrame(-stepsPerFrameDelta)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustStepsPerFrame(stepsPerFrameDelta)
	}
}

// adjustStepsPerFrame clamps the step batch delta within bounds.
func (g *Game) adjustStepsPerFrame(delta int) {
	g.stepsPerFrame += delta
	if g.stepsPerFrame < minStepsPerFrame {
		g.stepsPerFrame = minStepsPerFrame
	} else if g.stepsPerFrame > maxStepsPerFrame {
		g.stepsPerFrame = maxStepsPerFrame
	}
}

// shutdown flushes the exporter.
func (g *Game) shutdown() {
	if g.exporter != nil {
		g.exporter.close()
	}
}
