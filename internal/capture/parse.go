// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package capture

import (
	"encoding/binary"
	"strconv"
)

// Ethernet frame layout constants.
const (
	ethHeaderLen   = 14
	ethTypeOffset  = 12
	ipv4ProtoByte  = ethHeaderLen + 9 // IPv4 protocol field
	ipv6NextHeader = ethHeaderLen + 6 // IPv6 next-header field
)

// EtherTypes of interest.
const (
	etherTypeIPv4 = 0x0800
	etherTypeARP  = 0x0806
	etherTypeIPv6 = 0x86DD
)

// ipProtoNames maps IANA protocol numbers to the names used at training
// time. Unlisted protocols fall back to the numeric string, which the
// protocol encoder then maps to its unknown-category code.
var ipProtoNames = map[byte]string{
	1:  "ICMP",
	2:  "IGMP",
	6:  "TCP",
	17: "UDP",
	47: "GRE",
	50: "ESP",
	58: "ICMPv6",
	89: "OSPF",
}

// parseFrame derives a protocol identifier from a raw Ethernet frame.
// It never fails: frames too short to carry a protocol field yield "0",
// matching the extractor's ultimate fallback.
func parseFrame(frame []byte) string {
	if len(frame) < ethHeaderLen {
		return "0"
	}

	switch binary.BigEndian.Uint16(frame[ethTypeOffset : ethTypeOffset+2]) {
	case etherTypeIPv4:
		if len(frame) <= ipv4ProtoByte {
			return "0"
		}
		return protoName(frame[ipv4ProtoByte])
	case etherTypeIPv6:
		if len(frame) <= ipv6NextHeader {
			return "0"
		}
		return protoName(frame[ipv6NextHeader])
	case etherTypeARP:
		return "ARP"
	default:
		return "0"
	}
}

// protoName resolves an IP protocol number to a training-time name.
func protoName(num byte) string {
	if name, ok := ipProtoNames[num]; ok {
		return name
	}
	return strconv.Itoa(int(num))
}
