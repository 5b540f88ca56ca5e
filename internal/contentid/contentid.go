// Package contentid derives deterministic, UUID-shaped identifiers from
// blob content, so repeated uploads of identical bytes land on the same
// storage key.
package contentid

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// UUIDFor hashes data with MD5 and formats the digest as a version-4,
// RFC 4122 UUID. The same bytes always map to the same identifier.
// MD5 is not collision resistant; these identifiers are for
// deduplication, not for security-sensitive identity.
func UUIDFor(data []byte) uuid.UUID {
	sum := md5.Sum(data)
	u, _ := uuid.FromBytes(sum[:])
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return u
}
