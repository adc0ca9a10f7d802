package hw

import (
	"context"
	"sync"

	"go.bug.st/serial"
)

// SerialTransport writes raw frame bytes to a serial-connected
// microcontroller. No framing: the firmware reads exactly W*H*3 bytes per
// frame.
type SerialTransport struct {
	mu   sync.Mutex
	port serial.Port
	name string
}

// OpenSerial opens the named port at the given baud rate.
func OpenSerial(name string, baud int) (*SerialTransport, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, &ConnectionError{Target: name, Err: err}
	}
	return &SerialTransport{port: port, name: name}, nil
}

func (t *SerialTransport) Send(ctx context.Context, frame []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for len(frame) > 0 {
		n, err := t.port.Write(frame)
		if err != nil {
			return err
		}
		frame = frame[n:]
	}
	return nil
}

func (t *SerialTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	return err
}
