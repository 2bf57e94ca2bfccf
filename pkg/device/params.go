package device

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/igloo-home/esphome-go/pkg/transport"
)

// DefaultPort is the native API port devices listen on.
const DefaultPort = "6053"

// ConnectionParams identify and authenticate one device.
type ConnectionParams struct {
	// Address is host:port. A bare host gets DefaultPort.
	Address string `yaml:"address"`

	// NoisePSK is the base64 encryption key. Empty selects the plaintext
	// protocol.
	NoisePSK string `yaml:"noise_psk,omitempty"`

	// Password is sent in the Connect request.
	Password string `yaml:"password,omitempty"`

	// Name is an optional display name.
	Name string `yaml:"name,omitempty"`
}

// ErrInvalidParams is returned by ConnectionParams.Validate.
var ErrInvalidParams = errors.New("invalid connection parameters")

// Validate checks that the address is present and the key, if any, decodes
// to 32 bytes.
func (p ConnectionParams) Validate() error {
	if p.Address == "" {
		return fmt.Errorf("%w: address required", ErrInvalidParams)
	}
	if p.NoisePSK != "" {
		if _, err := transport.DecodePSK(p.NoisePSK); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
	}
	return nil
}

// Encrypted reports whether the parameters select the Noise transport.
func (p ConnectionParams) Encrypted() bool {
	return p.NoisePSK != ""
}

// DialAddress returns Address with DefaultPort added when it has none.
func (p ConnectionParams) DialAddress() string {
	return withPort(p.Address)
}

func withPort(addr string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	host := strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	return net.JoinHostPort(host, DefaultPort)
}
