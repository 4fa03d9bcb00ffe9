// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

//go:build linux

package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/sys/unix"

	"github.com/tomtom215/netsentinel/internal/metrics"
)

// recvTimeout bounds each socket read so the run loop can observe context
// cancellation between frames.
const recvTimeout = 500 * time.Millisecond

// AFPacketSource captures live traffic through a Linux AF_PACKET raw
// socket. It requires root or CAP_NET_RAW.
type AFPacketSource struct {
	iface   string
	snapLen int
}

// NewAFPacketSource creates a live capture source. An empty interface name
// observes all interfaces.
func NewAFPacketSource(iface string, snapLen int) (*AFPacketSource, error) {
	if snapLen <= 0 {
		snapLen = 65535
	}
	return &AFPacketSource{iface: iface, snapLen: snapLen}, nil
}

// Run opens the raw socket and delivers one RawEvent per captured frame
// until the context is canceled. Socket-open failures are returned with a
// permission hint where applicable; transient read errors are skipped.
func (s *AFPacketSource) Run(ctx context.Context, handler Handler) error {
	fd, err := s.open()
	if err != nil {
		return err
	}
	defer unix.Close(fd)

	buf := make([]byte, s.snapLen)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, _, err := unix.Recvfrom(fd, buf, 0)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
				continue
			}
			metrics.CaptureErrors.Inc()
			return fmt.Errorf("reading from capture socket: %w", err)
		}
		if n <= 0 {
			continue
		}

		handler(RawEvent{
			Protocol:  parseFrame(buf[:n]),
			Length:    n,
			Timestamp: time.Now(),
		})
	}
}

// open creates and configures the AF_PACKET socket.
func (s *AFPacketSource) open() (int, error) {
	proto := htons(unix.ETH_P_ALL)
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(proto))
	if err != nil {
		if errors.Is(err, unix.EPERM) || errors.Is(err, unix.EACCES) {
			return -1, fmt.Errorf("opening capture socket: %w (live capture needs root or CAP_NET_RAW; try sudo)", err)
		}
		return -1, fmt.Errorf("opening capture socket: %w", err)
	}

	if s.iface != "" {
		nic, err := net.InterfaceByName(s.iface)
		if err != nil {
			unix.Close(fd)
			return -1, fmt.Errorf("interface %q unavailable: %w", s.iface, err)
		}
		sll := &unix.SockaddrLinklayer{
			Protocol: proto,
			Ifindex:  nic.Index,
		}
		if err := unix.Bind(fd, sll); err != nil {
			unix.Close(fd)
			return -1, fmt.Errorf("binding to interface %q: %w", s.iface, err)
		}
	}

	// Bounded reads keep the loop responsive to shutdown.
	tv := unix.NsecToTimeval(recvTimeout.Nanoseconds())
	if err := unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("setting capture read timeout: %w", err)
	}

	return fd, nil
}

// htons converts a uint16 from host to network byte order. On big-endian
// hosts (s390x, some mips) the two orders coincide and no swap happens.
func htons(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

// String implements fmt.Stringer for logging.
func (s *AFPacketSource) String() string {
	if s.iface == "" {
		return "afpacket(all interfaces)"
	}
	return "afpacket(" + s.iface + ")"
}
