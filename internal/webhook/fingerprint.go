package webhook

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	jsoncanonicalizer "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

// Fingerprint hashes the RFC 8785 canonical form of payload, so re-serialised copies of the same
// document share a fingerprint.
func Fingerprint(payload []byte) (string, error) {
	canonical, err := jsoncanonicalizer.Transform(payload)
	if err != nil {
		return "", fmt.Errorf("canonicalize json: %w", err)
	}
	return strconv.FormatUint(xxhash.Sum64(canonical), 16), nil
}
