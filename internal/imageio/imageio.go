// Package imageio resolves heterogeneous image inputs (raw bytes, data URIs,
// bare base64 payloads, file paths) to binary and sniffs their MIME type.
package imageio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/craftlane/mockup/internal/domain"
)

// Source carries one reference image. Data wins when set; otherwise Ref is
// interpreted as a data URI, a bare base64 payload, or a filesystem path.
type Source struct {
	Data []byte
	Ref  string
}

// Normalize resolves a source to its raw bytes. The file-path branch is the
// only filesystem I/O in the library.
func Normalize(src Source) ([]byte, error) {
	if len(src.Data) > 0 {
		return src.Data, nil
	}

	ref := strings.TrimSpace(src.Ref)
	if ref == "" {
		return nil, &domain.InvalidInputError{Reason: "empty image source"}
	}

	if strings.HasPrefix(ref, "data:") {
		idx := strings.Index(ref, ",")
		if idx < 0 {
			return nil, &domain.InvalidInputError{Reason: "data URI has no payload separator"}
		}
		decoded, err := base64.StdEncoding.DecodeString(ref[idx+1:])
		if err != nil {
			return nil, &domain.InvalidInputError{Reason: "data URI payload is not valid base64", Err: err}
		}
		if len(decoded) == 0 {
			return nil, &domain.InvalidInputError{Reason: "data URI payload is empty"}
		}
		return decoded, nil
	}

	// A string without path separators may be a bare base64 payload or a
	// relative filename. Try base64 first and fall through on failure.
	if !strings.ContainsAny(ref, "/\\") {
		if decoded, err := base64.StdEncoding.DecodeString(ref); err == nil && len(decoded) > 0 {
			return decoded, nil
		}
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, &domain.InvalidInputError{Reason: fmt.Sprintf("read image file %q", ref), Err: err}
	}
	if len(data) == 0 {
		return nil, &domain.InvalidInputError{Reason: fmt.Sprintf("image file %q is empty", ref)}
	}
	return data, nil
}

var signatures = []struct {
	prefix []byte
	mime   string
}{
	{[]byte{0xFF, 0xD8}, "image/jpeg"},
	{[]byte{0x89, 0x50, 0x4E, 0x47}, "image/png"},
	{[]byte{0x47, 0x49, 0x46}, "image/gif"},
	{[]byte{0x52, 0x49, 0x46, 0x46}, "image/webp"},
}

// DetectMIME sniffs the payload against the four signatures above, first
// match wins. Unrecognized payloads report "image/png". Never fails.
func DetectMIME(data []byte) string {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig.prefix) {
			return sig.mime
		}
	}
	return "image/png"
}
