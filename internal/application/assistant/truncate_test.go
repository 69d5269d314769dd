package assistant

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_PorRunas(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 10))
	assert.Equal(t, "añ…", truncate("añoñ", 2))

	out := truncate("ñññññ", 3)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "ñññ…", out)
}
