package mime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Plain, Parse("text/plain"))
	assert.Equal(t, Plain, Parse("Text/Plain"))
	assert.Equal(t, OctetStream, Parse("application/octet-stream"))
	assert.Equal(t, OctetStream, Parse("APPLICATION/OCTET-STREAM"))
	assert.Equal(t, "application/json", Parse("Application/JSON"))
}

func TestComplies(t *testing.T) {
	assert.True(t, Complies(OctetStream, "application/octet-stream"))
	assert.True(t, Complies(OctetStream, "Application/Octet-Stream"))
	assert.False(t, Complies(OctetStream, "text/plain"))
	assert.False(t, Complies(OctetStream, ""))
}
