package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a short sound played on a terminal event
type Cue uint8

const (
	CueCarved Cue = iota // generation finished
	CueSolved            // route found
	CueNoPath            // solver exhausted without reaching the goal
	CueReplay            // replay started
	cueCount
)

var cueNames = [cueCount]string{"carved", "solved", "no_path", "replay"}

func (c Cue) String() string {
	if c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

const (
	DefaultSampleRate = beep.SampleRate(48000)
	DefaultVolume     = 0.6

	carvedNoteDuration = 70 * time.Millisecond
	carvedAttack       = 4 * time.Millisecond
	carvedRelease      = 40 * time.Millisecond

	solvedDuration        = 450 * time.Millisecond
	solvedAttack          = 5 * time.Millisecond
	solvedRelease         = 400 * time.Millisecond
	solvedOvertoneRelease = 200 * time.Millisecond

	noPathNoteDuration = 120 * time.Millisecond
	noPathAttack       = 5 * time.Millisecond
	noPathRelease      = 60 * time.Millisecond

	replayDuration = 180 * time.Millisecond
	replayAttack   = 60 * time.Millisecond
	replayRelease  = 110 * time.Millisecond
)

// Config controls cue synthesis
type Config struct {
	Enabled    bool
	SampleRate beep.SampleRate
	Volume     float64 // linear, 0..1
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: DefaultSampleRate,
		Volume:     DefaultVolume,
	}
}

// Streamer synthesises cue c; nil for an unknown cue
func Streamer(c Cue, cfg Config) beep.Streamer {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}

	var s beep.Streamer
	switch c {
	case CueCarved:
		// rising fifth, E5 to B5
		s = beep.Seq(
			tone(659.25, carvedNoteDuration, carvedAttack, carvedRelease, WaveSquare, rate),
			tone(987.77, carvedNoteDuration, carvedAttack, carvedRelease, WaveSquare, rate),
		)
	case CueSolved:
		fund := tone(880, solvedDuration, solvedAttack, solvedRelease, WaveSine, rate)
		over := tone(1760, solvedDuration, solvedAttack, solvedOvertoneRelease, WaveSine, rate)
		s = beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	case CueNoPath:
		s = beep.Seq(
			tone(110, noPathNoteDuration, noPathAttack, noPathRelease, WaveSaw, rate),
			tone(82.41, noPathNoteDuration, noPathAttack, noPathRelease, WaveSaw, rate),
		)
	case CueReplay:
		s = tone(0, replayDuration, replayAttack, replayRelease, WaveNoise, rate)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume)
}

// Duration is the nominal length of cue c
func Duration(c Cue) time.Duration {
	switch c {
	case CueCarved:
		return 2 * carvedNoteDuration
	case CueSolved:
		return solvedDuration
	case CueNoPath:
		return 2 * noPathNoteDuration
	case CueReplay:
		return replayDuration
	}
	return 0
}
