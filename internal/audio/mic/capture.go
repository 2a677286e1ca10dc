package mic

import (
	"fmt"
	"sync"

	"github.com/evarisis/actaflow/internal/audio"
	"github.com/gordonklaus/portaudio"
)

type micSession struct {
	stream  *portaudio.Stream
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	pumpErr error
	err     error
}

// Start initializes PortAudio and opens the default input stream.
func (m *implMicrophone) Start(buf *audio.Buffer) (audio.Stopper, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}

	in := make([]int16, m.framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(m.sampleRate), len(in), in)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start input stream: %w", err)
	}

	s := &micSession{stream: stream, done: make(chan struct{})}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.pumpErr = audio.Pump(s.done, stream.Read, in, buf, m.logger)
	}()

	return s, nil
}

// Stop releases the device. The audio captured before a device failure is
// kept in the buffer; the failure is reported here.
func (s *micSession) Stop() error {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()

		if s.pumpErr != nil {
			s.err = fmt.Errorf("capture: %w", s.pumpErr)
		}
		if err := s.stream.Stop(); err != nil && s.err == nil {
			s.err = fmt.Errorf("stop input stream: %w", err)
		}
		if err := s.stream.Close(); err != nil && s.err == nil {
			s.err = fmt.Errorf("close input stream: %w", err)
		}
		if err := portaudio.Terminate(); err != nil && s.err == nil {
			s.err = fmt.Errorf("terminate portaudio: %w", err)
		}
	})
	return s.err
}
