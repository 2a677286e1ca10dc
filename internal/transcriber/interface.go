package transcriber

import (
	"context"
	"errors"
	"fmt"
)

// Transcriber turns one clip of speech into text using a remote service.
type Transcriber interface {
	Transcribe(ctx context.Context, clip Clip) (string, error)
}

// Clip is raw mono s16le PCM plus the language hint sent with it.
type Clip struct {
	PCM        []byte
	SampleRate int
	Language   string
}

// ErrNoSpeech means the service answered but understood nothing.
var ErrNoSpeech = errors.New("no speech recognized")

// RequestError marks a failure to reach the service or a transport level
// rejection. Callers treat it as a lost connection.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
