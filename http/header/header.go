// Package header holds the closed vocabulary of headers the server works
// with. Request headers outside of the vocabulary are dropped at parse time,
// response headers are rendered via fixed wire prefixes.
package header

import "github.com/indigo-web/utils/strcomp"

const (
	UserAgent     = "User-Agent"
	Host          = "Host"
	Accept        = "Accept"
	ContentType   = "Content-Type"
	ContentLength = "Content-Length"
)

// Recognized lists every request header name the parser stores, in canonical
// form.
var Recognized = []string{UserAgent, Host, Accept, ContentType, ContentLength}

// Canonical maps a raw header name onto its canonical form, case-insensitively.
// The second return value reports whether the name belongs to the vocabulary.
func Canonical(raw string) (string, bool) {
	for _, name := range Recognized {
		if strcomp.EqualFold(raw, name) {
			return name, true
		}
	}

	return "", false
}

// Wire prefixes of the response headers. The colon and the space are a part
// of the prefix, values are appended as-is.
const (
	ContentTypePrefix   = "Content-Type: "
	ContentLengthPrefix = "Content-Length: "
)
