package cidr

import (
	"fmt"
	"net"
)

// ToBits converts a network into the bits of its address up to the mask length.
// A /0 network has no bits, so it becomes the empty sequence.
//
// Example:
//
//	For "192.168.1.0/24" this returns the first 24 bits of 192.168.1.0,
//	and false since it is not an IPv6 network.
func ToBits(ipnet *net.IPNet) (bits []int, isV6 bool) {
	if ipnet == nil {
		panic("[BUG] ToBits: IPNet is nil: validate the input before calling ToBits")
	}

	maskSize, maskBits := ipnet.Mask.Size()
	ip := ipnet.IP
	if maskBits == net.IPv4len*8 {
		ip = ip.To4()
	} else {
		ip = ip.To16()
		isV6 = true
	}
	if ip == nil || maskBits == 0 {
		panic("[BUG] ToBits: address and mask do not match: " + ipnet.String())
	}

	bits = make([]int, maskSize)
	for i := range bits {
		// Shift the byte holding bit i so that bit lands in the lowest position.
		byteVal := ip[i/8]
		bits[i] = int((byteVal >> (7 - i%8)) & 1)
	}
	return bits, isV6
}

// FromBits converts a slice of bits into the network they describe.
// Missing host bits are zero, and the mask covers exactly len(bits).
func FromBits(bits []int, isV6 bool) *net.IPNet {
	maxBytes := net.IPv4len
	if isV6 {
		maxBytes = net.IPv6len
	}
	if len(bits) > maxBytes*8 {
		panic(fmt.Sprintf("[BUG] FromBits: %d bits do not fit in %d bytes", len(bits), maxBytes))
	}

	ip := make(net.IP, maxBytes)
	for i, bit := range bits {
		ip[i/8] |= byte(bit&1) << (7 - i%8)
	}

	return &net.IPNet{
		IP:   ip,
		Mask: net.CIDRMask(len(bits), maxBytes*8),
	}
}

// Parse parses a CIDR string into its network, host bits are dropped.
func Parse(cidr string) (*net.IPNet, error) {
	_, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("invalid CIDR %q: %w", cidr, err)
	}
	return ipnet, nil
}
