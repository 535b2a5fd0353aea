package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mazestep/maze"
)

// Player mixes cues onto the speaker
// Every method is safe to call before Init or after Close; cues are then dropped
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [cueCount]int
}

func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Init opens the speaker; fails on hosts without an audio device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	rate := p.cfg.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences pending cues
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues cue c; reports whether it reached the mixer
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c >= cueCount {
		return false
	}
	p.played[c]++
	if !p.initialized || p.muted {
		return false
	}
	s := Streamer(c, p.cfg)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Played counts requests for c, including dropped ones
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c >= cueCount {
		return 0
	}
	return p.played[c]
}

func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Generated plays the carve-complete cue
func (p *Player) Generated(maze.Stats) {
	p.Play(CueCarved)
}

// Solved plays the success or failure cue
func (p *Player) Solved(found bool, cost int) {
	if found {
		p.Play(CueSolved)
		return
	}
	p.Play(CueNoPath)
}

func (p *Player) Replaying() {
	p.Play(CueReplay)
}
