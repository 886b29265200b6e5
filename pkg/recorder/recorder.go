package recorder

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Transcriber converts a recorded audio file into utterance text. The
// implementation (external speech-to-text service) is supplied by the
// caller; transcription accuracy is out of scope here.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Recorder captures audio bytes from a source into temporary files. Each
// capture is an explicit Session handle owned by the caller; there is no
// shared recording state across sessions.
type Recorder struct {
	dir string
}

// New creates a Recorder writing capture files into dir. An empty dir
// falls back to the OS temp directory.
func New(dir string) *Recorder {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Recorder{dir: dir}
}

// Start begins copying from src into a fresh capture file and returns the
// session handle. The copy runs until src is exhausted or Stop is called.
// Finite sources (an uploaded clip) should be finalized with Wait so every
// byte lands in the file; Stop is for cutting off open-ended sources.
func (r *Recorder) Start(src io.Reader) (*Session, error) {
	f, err := os.CreateTemp(r.dir, "capture-*.wav")
	if err != nil {
		return nil, fmt.Errorf("recorder: failed to create capture file: %w", err)
	}

	s := &Session{
		file:    f,
		path:    f.Name(),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}

	go s.copyLoop(src)
	return s, nil
}

// Session is a single in-flight capture.
type Session struct {
	file    *os.File
	path    string
	stopped chan struct{}
	done    chan struct{}
	copyErr error

	signalOnce   sync.Once
	finalizeOnce sync.Once
	result       string
	resultErr    error
}

// Path returns the capture file path. The file is complete only after Wait
// or Stop has returned.
func (s *Session) Path() string {
	return s.path
}

func (s *Session) copyLoop(src io.Reader) {
	defer close(s.done)

	buf := make([]byte, 32*1024)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := s.file.Write(buf[:n]); werr != nil {
				s.copyErr = werr
				return
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			s.copyErr = err
			return
		}

		// stop requests are honored between reads, never mid-write, so
		// data already taken from the source is always flushed
		select {
		case <-s.stopped:
			return
		default:
		}
	}
}

// Wait blocks until the source is exhausted, then finalizes the capture and
// returns the file path. Use it for finite sources; it never truncates.
func (s *Session) Wait() (string, error) {
	<-s.done
	return s.finalize()
}

// Stop interrupts the capture and returns the path of what was recorded so
// far. The capture file is removed when the copy failed. Subsequent calls
// return the same result.
func (s *Session) Stop() (string, error) {
	s.signalOnce.Do(func() { close(s.stopped) })
	<-s.done
	return s.finalize()
}

func (s *Session) finalize() (string, error) {
	s.finalizeOnce.Do(func() {
		if err := s.file.Close(); err != nil && s.copyErr == nil {
			s.copyErr = err
		}

		if s.copyErr != nil {
			os.Remove(s.path)
			s.resultErr = fmt.Errorf("recorder: capture failed: %w", s.copyErr)
			return
		}
		s.result = s.path
	})
	return s.result, s.resultErr
}
