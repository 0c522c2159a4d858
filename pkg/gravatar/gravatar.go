package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// Options controls the derived image: pixel size, content rating,
// and the fallback style used when the email has no Gravatar.
type Options struct {
	Size    int
	Rating  string
	Default string
}

// URL derives the Gravatar image URL for an email address.
// The derivation is pure: the email is trimmed and lowercased before
// hashing, so the same address always yields the same URL.
func URL(email string, opts Options) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	hash := hex.EncodeToString(sum[:])

	q := url.Values{}
	if opts.Size > 0 {
		q.Set("s", strconv.Itoa(opts.Size))
	}
	if opts.Rating != "" {
		q.Set("r", opts.Rating)
	}
	if opts.Default != "" {
		q.Set("d", opts.Default)
	}
	if len(q) == 0 {
		return baseURL + hash
	}
	return baseURL + hash + "?" + q.Encode()
}
