package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ShareSlugLen is the length of generated public share slugs.
const ShareSlugLen = 12

// ShareSlug derives a stable, URL-safe slug from a draft id. The same draft
// always maps to the same slug, so re-enabling sharing revives old links.
func ShareSlug(draftID string) string {
	sum := sha256.Sum256([]byte(draftID))
	return hex.EncodeToString(sum[:])[:ShareSlugLen]
}
