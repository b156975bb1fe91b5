package service

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// gravatarURL derives the deterministic avatar URL for an email address
// (200px, PG-rated, "mystery man" fallback). The URL is protocol-relative.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("//www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
