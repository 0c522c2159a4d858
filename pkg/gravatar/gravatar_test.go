package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultOpts = Options{Size: 200, Rating: "pg", Default: "mm"}

func TestURLKnownHash(t *testing.T) {
	// md5("myemailaddress@example.com") is the documented Gravatar example hash
	got := URL("myemailaddress@example.com", Options{})
	assert.Equal(t, "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346", got)
}

func TestURLQueryParams(t *testing.T) {
	got := URL("ann@example.com", defaultOpts)
	assert.Equal(t, "https://www.gravatar.com/avatar/257c57037d384ae37ea27a07e8a01665?d=mm&r=pg&s=200", got)
}

func TestURLDeterministic(t *testing.T) {
	a := URL("ann@example.com", defaultOpts)
	b := URL("ann@example.com", defaultOpts)
	assert.Equal(t, a, b)
}

func TestURLNormalizesEmail(t *testing.T) {
	plain := URL("ann@example.com", defaultOpts)

	assert.Equal(t, plain, URL("Ann@Example.COM", defaultOpts))
	assert.Equal(t, plain, URL("  ann@example.com\n", defaultOpts))
	assert.NotEqual(t, plain, URL("bob@example.com", defaultOpts))
}

func TestURLPartialOptions(t *testing.T) {
	got := URL("ann@example.com", Options{Size: 80})
	assert.Equal(t, "https://www.gravatar.com/avatar/257c57037d384ae37ea27a07e8a01665?s=80", got)
}
