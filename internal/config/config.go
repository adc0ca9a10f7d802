package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Serial struct {
	Port string `yaml:"port"` // e.g. /dev/ttyUSB0 or COM3
	Baud int    `yaml:"baud"` // e.g. 115200
}

type Network struct {
	Host string `yaml:"host"` // e.g. 192.168.4.1
}

type SPI struct {
	Dev string `yaml:"dev"` // e.g. /dev/spidev0.0
}

type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Brightness int    `yaml:"brightness"` // 0..255 global output scale
	Transport  string `yaml:"transport"`  // "serial" | "network" | "spi" | "sim"

	Serial  Serial  `yaml:"serial,omitempty"`
	Network Network `yaml:"network,omitempty"`
	SPI     SPI     `yaml:"spi,omitempty"`

	WebAddr string `yaml:"web_addr"` // preview websocket listen address
}

// Default mirrors the firmware-side assumptions: 16×16 matrix over serial.
func Default() *Config {
	return &Config{
		Width:      16,
		Height:     16,
		Brightness: 128,
		Transport:  "sim",
		Serial:     Serial{Port: "/dev/ttyUSB0", Baud: 115200},
		Network:    Network{Host: "192.168.4.1"},
		SPI:        SPI{Dev: "/dev/spidev0.0"},
		WebAddr:    ":8080",
	}
}

// Load reads path and overlays it on the defaults, so a partial file is
// fine.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid matrix size %dx%d", c.Width, c.Height)
	}
	if c.Brightness < 0 || c.Brightness > 255 {
		return fmt.Errorf("config: brightness %d out of range", c.Brightness)
	}
	switch c.Transport {
	case "serial", "network", "spi", "sim":
	default:
		return fmt.Errorf("config: unknown transport %q", c.Transport)
	}
	return nil
}
