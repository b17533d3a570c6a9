package cidr

import (
	"net"

	"github.com/khalid-nowaf/seqtrie/pkg/trie"
)

// Set holds networks as bit sequences, IPv4 and IPv6 each in their own trie.
type Set struct {
	ipv4 *trie.Trie[int]
	ipv6 *trie.Trie[int]
}

func NewSet(opts ...trie.Option[int]) *Set {
	return &Set{
		ipv4: trie.New(opts...),
		ipv6: trie.New(opts...),
	}
}

func (s *Set) tree(isV6 bool) *trie.Trie[int] {
	if isV6 {
		return s.ipv6
	}
	return s.ipv4
}

// Clone returns an independent copy of the set, see trie.Trie.Clone.
func (s *Set) Clone() *Set {
	return &Set{
		ipv4: s.ipv4.Clone(),
		ipv6: s.ipv6.Clone(),
	}
}

func (s *Set) Release() {
	s.ipv4.Release()
	s.ipv6.Release()
}

func (s *Set) Insert(ipnet *net.IPNet) {
	bits, isV6 := ToBits(ipnet)
	s.tree(isV6).Insert(bits)
}

// Contains reports whether exactly this network is stored.
func (s *Set) Contains(ipnet *net.IPNet) bool {
	bits, isV6 := ToBits(ipnet)
	return s.tree(isV6).Contains(bits)
}

// Remove deletes the network, returns false if it was not stored.
func (s *Set) Remove(ipnet *net.IPNet) bool {
	bits, isV6 := ToBits(ipnet)
	_, ok := s.tree(isV6).Remove(bits)
	return ok
}

// Count returns the number of stored IPv4 and IPv6 networks.
func (s *Set) Count() int {
	return s.ipv4.Count() + s.ipv6.Count()
}

// Within returns every stored network inside ipnet, ipnet included if stored.
func (s *Set) Within(ipnet *net.IPNet) []*net.IPNet {
	bits, isV6 := ToBits(ipnet)
	return toNetworks(s.tree(isV6).CollectionsWithPrefix(bits), isV6)
}

// All returns the stored networks of one IP version.
func (s *Set) All(isV6 bool) []*net.IPNet {
	return toNetworks(s.tree(isV6).Collections(), isV6)
}

func toNetworks(paths [][]int, isV6 bool) []*net.IPNet {
	networks := make([]*net.IPNet, 0, len(paths))
	for _, path := range paths {
		networks = append(networks, FromBits(path, isV6))
	}
	return networks
}
