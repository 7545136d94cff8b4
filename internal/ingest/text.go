package ingest

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// legacyEncodings is the fixed fallback chain tried when a text file is not
// valid UTF-8.
var legacyEncodings = []encoding.Encoding{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// readText reads a plain text file, trying UTF-8 first, then the legacy
// encoding chain, and finally force-decoding with undecodable bytes dropped
// rather than failing.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read txt: %w", ErrRead, err)
	}

	return strings.TrimSpace(decodeText(data)), nil
}

func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	for _, enc := range legacyEncodings {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
			return string(decoded)
		}
	}

	return strings.ToValidUTF8(string(data), "")
}
