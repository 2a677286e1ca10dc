package audio

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"sync"
	"testing"
)

func samplePCM(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func TestWriteReadWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segment_1.wav")
	pcm := samplePCM(0, 1200, -1200, 32767, -32768, 5)

	if err := WriteWAV(path, pcm, DefaultSampleRate); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}

	got, rate, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV() error = %v", err)
	}
	if rate != DefaultSampleRate {
		t.Errorf("rate = %v, want %v", rate, DefaultSampleRate)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("ReadWAV() = %v, want %v", got, pcm)
	}
}

func TestReadWAVMissing(t *testing.T) {
	if _, _, err := ReadWAV(filepath.Join(t.TempDir(), "nope.wav")); err == nil {
		t.Error("ReadWAV() should fail for missing file")
	}
}

func TestEncodeWAV(t *testing.T) {
	data, err := EncodeWAV(samplePCM(1, 2, 3, 4), DefaultSampleRate)
	if err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Errorf("EncodeWAV() header = %q, want RIFF", data[:4])
	}
	if !bytes.Contains(data[:16], []byte("WAVE")) {
		t.Errorf("EncodeWAV() missing WAVE marker")
	}
	if !bytes.HasSuffix(data, samplePCM(1, 2, 3, 4)) {
		t.Errorf("EncodeWAV() does not end with the PCM payload")
	}
}

func TestSeekBuffer(t *testing.T) {
	var sb seekBuffer
	sb.Write([]byte("hello world"))
	if _, err := sb.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	sb.Write([]byte("J"))
	if string(sb.buf) != "Jello world" {
		t.Errorf("buf = %q, want %q", sb.buf, "Jello world")
	}
	if _, err := sb.Seek(-1, 0); err == nil {
		t.Error("Seek() should reject negative positions")
	}
}

func TestBufferConcurrentAppend(t *testing.T) {
	var buf Buffer
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf.Append([]byte{1, 2})
		}()
	}
	wg.Wait()

	if buf.Len() != 16 {
		t.Errorf("Len() = %v, want %v", buf.Len(), 16)
	}
	b := buf.Bytes()
	b[0] = 9
	if buf.Bytes()[0] != 1 {
		t.Error("Bytes() should return an owned copy")
	}
}
