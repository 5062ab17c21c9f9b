package main

import "sync"

const audioSampleRate = 48000

// probeStream turns the field amplitude at the probe cell into a continuous
// stereo PCM stream. The producer (the game loop) replaces the held sample
// once per frame; Read stretches it across however many frames the audio
// pipeline asks for.
type probeStream struct {
	mu     sync.Mutex
	sample float32
	dc     float32
}

func newProbeStream() *probeStream {
	return &probeStream{}
}

// SetSample stores the latest probe value. A slow AC coupling removes the DC
// component so a settled field is silent.
func (s *probeStream) SetSample(v float32) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s.mu.Lock()
	const alpha = 0.001
	s.dc += alpha * (v - s.dc)
	s.sample = v - s.dc
	s.mu.Unlock()
}

func (s *probeStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Only generate whole stereo frames (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	sample := s.sample
	s.mu.Unlock()

	for i := 0; i < frameBytes; i += 4 {
		v := int16(sample * 32767)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *probeStream) Close() error { return nil }
