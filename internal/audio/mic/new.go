// Package mic captures the default input device through PortAudio. It is the
// only package that needs cgo; everything else works on recorded PCM.
package mic

import (
	"github.com/evarisis/actaflow/internal/audio"
	"github.com/evarisis/actaflow/internal/logger"
)

type implMicrophone struct {
	sampleRate      int
	framesPerBuffer int
	logger          logger.Logger
}

// New creates a Capturer bound to the default input device: mono 16-bit PCM.
func New(sampleRate, framesPerBuffer int, log logger.Logger) audio.Capturer {
	if sampleRate <= 0 {
		sampleRate = audio.DefaultSampleRate
	}
	if framesPerBuffer <= 0 {
		framesPerBuffer = 1024
	}
	return &implMicrophone{
		sampleRate:      sampleRate,
		framesPerBuffer: framesPerBuffer,
		logger:          log,
	}
}
