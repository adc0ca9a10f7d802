package hw

import (
	"context"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// NRZ bit rate for WS2812-class strips: 800 kHz data expanded 3x on the SPI
// clock, plus slack.
const defaultSPIFreq = 2500 * physic.KiloHertz

// SPITransport drives a WS2812-class strip directly over spidev, with no
// microcontroller in between. The nrzled device handles the 3x NRZ bit
// expansion.
type SPITransport struct {
	mu     sync.Mutex
	dev    *nrzled.Dev
	closer spi.PortCloser
	size   int // expected frame length in bytes
}

// NewSPIFromPort wraps an already-open SPI port; tests hand in a playback
// port.
func NewSPIFromPort(p spi.Port, numPixels int) (*SPITransport, error) {
	dev, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: numPixels,
		Channels:  3,
		Freq:      defaultSPIFreq,
	})
	if err != nil {
		return nil, err
	}
	return &SPITransport{dev: dev, size: numPixels * 3}, nil
}

// OpenSPI initializes the host, opens the spidev device (e.g.
// "/dev/spidev0.0") and prepares the NRZ encoder for numPixels LEDs.
func OpenSPI(devPath string, numPixels int) (*SPITransport, error) {
	if _, err := host.Init(); err != nil {
		return nil, &ConnectionError{Target: devPath, Err: err}
	}
	port, err := spireg.Open(devPath)
	if err != nil {
		return nil, &ConnectionError{Target: devPath, Err: err}
	}
	t, err := NewSPIFromPort(port, numPixels)
	if err != nil {
		port.Close()
		return nil, &ConnectionError{Target: devPath, Err: err}
	}
	t.closer = port
	return t, nil
}

func (t *SPITransport) Send(ctx context.Context, frame []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(frame) > t.size {
		frame = frame[:t.size]
	}
	_, err := t.dev.Write(frame)
	return err
}

func (t *SPITransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closer != nil {
		err := t.closer.Close()
		t.closer = nil
		return err
	}
	return nil
}
