package audio

// DefaultSampleRate is the rate every meeting is captured and stored at.
const DefaultSampleRate = 16000

// Capturer records from an input device into a Buffer.
type Capturer interface {
	// Start opens the device and begins appending PCM chunks to buf on a
	// background goroutine. Device errors are returned here, not later.
	Start(buf *Buffer) (Stopper, error)
}

// Stopper ends an active capture. Stop blocks until the capture goroutine has
// released the device.
type Stopper interface {
	Stop() error
}
