package mime

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type MIME = string

const (
	Plain       MIME = "text/plain"
	OctetStream MIME = "application/octet-stream"
)

// Parse normalizes a Content-Type header value onto the vocabulary. The two
// named types are returned as their canonical constants, anything else falls
// through to its lowercase form instead of failing.
func Parse(value string) MIME {
	switch {
	case strcomp.EqualFold(value, Plain):
		return Plain
	case strcomp.EqualFold(value, OctetStream):
		return OctetStream
	default:
		return strings.ToLower(value)
	}
}

// Complies reports whether a raw header value names the given MIME.
func Complies(mime MIME, with string) bool {
	return Parse(with) == mime
}
