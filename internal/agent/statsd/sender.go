// Package statsd sends metric lines to statsd over UDP.
// Every line is one datagram, nothing waits for an answer.
package statsd

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"go.uber.org/zap"
)

const network = "udp"

var (
	ErrResolve = errors.New("statsd address resolve error")
	ErrSend    = errors.New("statsd send error")
)

// Sender keeps resolved statsd address and one unconnected UDP socket.
type Sender struct {
	addr   *net.UDPAddr
	conn   *net.UDPConn
	logger *zap.SugaredLogger
}

// NewSender resolves statsd address once. All Send calls use the result.
func NewSender(host string, port int, logger *zap.SugaredLogger) (*Sender, error) {
	address := net.JoinHostPort(host, strconv.Itoa(port))
	addr, err := net.ResolveUDPAddr(network, address)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrResolve, address, err)
	}
	conn, err := net.ListenUDP(network, nil)
	if err != nil {
		return nil, fmt.Errorf("open udp socket error: %w", err)
	}
	logger.Debugw("Statsd address resolved", "address", address, "ip", addr.IP.String())
	return &Sender{addr: addr, conn: conn, logger: logger}, nil
}

// Addr returns resolved statsd address.
func (s *Sender) Addr() *net.UDPAddr {
	return s.addr
}

// Send writes metric as a single datagram. There are no repeats on error.
func (s *Sender) Send(metric string) error {
	s.logger.Debugw("Sending", "data", metric, "host", s.addr.IP.String(), "port", s.addr.Port)
	if _, err := s.conn.WriteToUDP([]byte(metric), s.addr); err != nil {
		return fmt.Errorf("%w: to '%s': %w", ErrSend, s.addr, err)
	}
	return nil
}

// Close closes UDP socket.
func (s *Sender) Close() error {
	return s.conn.Close()
}
