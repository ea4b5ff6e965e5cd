package mojang

import (
	"crypto/sha1"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// BlockedServers is the list of SHA-1 hashes of the address patterns that
// Mojang blocks clients from connecting to.
type BlockedServers struct {
	Hashes []string
}

// IsBlocked reports whether the address matches any blocked pattern.
func (b *BlockedServers) IsBlocked(address string) bool {
	_, blocked := b.FindBlockedPattern(address)
	return blocked
}

// FindBlockedPattern returns the pattern that blocks the address. The exact
// address is checked first, then wildcard patterns: octet prefixes such as
// "192.0.*" for plain ipv4 addresses and domain suffixes such as
// "*.example.com" for everything else.
func (b *BlockedServers) FindBlockedPattern(address string) (string, bool) {
	if b.IsPatternBlocked(address) {
		return address, true
	}

	parts := strings.Split(address, ".")
	if isIPv4(parts) {
		for i := len(parts) - 1; i >= 1; i-- {
			pattern := strings.Join(parts[:i], ".") + ".*"
			if b.IsPatternBlocked(pattern) {
				return pattern, true
			}
		}
	} else {
		for i := 1; i < len(parts); i++ {
			pattern := "*." + strings.Join(parts[i:], ".")
			if b.IsPatternBlocked(pattern) {
				return pattern, true
			}
		}
	}

	return "", false
}

// IsPatternBlocked reports whether the exact pattern is present in the
// hashed blocklist.
func (b *BlockedServers) IsPatternBlocked(pattern string) bool {
	hash := sha1.Sum([]byte(pattern))
	return slices.Contains(b.Hashes, hex.EncodeToString(hash[:]))
}

// Mojang treats an address as ipv4 naively: four dot-separated parts, each
// a valid octet.
func isIPv4(parts []string) bool {
	if len(parts) != 4 {
		return false
	}

	for _, part := range parts {
		if _, err := strconv.ParseUint(part, 10, 8); err != nil {
			return false
		}
	}

	return true
}
