// Package codec implements the build-time half of the compressed script
// protocol. A payload is raw-deflated, base64 encoded and wrapped in an
// expression that the jsinflate bootstrap script knows how to evaluate:
//
//	blocksEval(RawDeflate.inflate(atob("<base64>")));
package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Wrapper tokens shared with the load-time decompression script.
const (
	EvalCall    = "blocksEval"
	InflateCall = "RawDeflate.inflate"
	DecodeCall  = "atob"
)

// Marker is the substring that identifies a compressed payload in markup.
const Marker = "RawDeflate"

// Encode deflates data without zlib or gzip framing and returns it as
// standard base64.
func Encode(data []byte) (string, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("creating deflate writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("deflating payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("flushing deflate writer: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. It mirrors what atob followed by RawDeflate.inflate
// does in the browser.
func Decode(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflating payload: %w", err)
	}
	return out, nil
}

// WriteCompressed writes data to sb as a self-decompressing expression.
// When enabled is false the data is written unchanged.
func WriteCompressed(sb *strings.Builder, data []byte, enabled bool) error {
	if !enabled {
		sb.Write(data)
		return nil
	}

	encoded, err := Encode(data)
	if err != nil {
		return err
	}

	sb.WriteString(EvalCall + "(" + InflateCall + "(" + DecodeCall + `("`)
	sb.WriteString(encoded)
	sb.WriteString(`")));`)
	return nil
}

// Unwrap extracts the base64 literal from an expression produced by
// WriteCompressed. ok is false if s is not such an expression.
func Unwrap(s string) (encoded string, ok bool) {
	prefix := EvalCall + "(" + InflateCall + "(" + DecodeCall + `("`
	const suffix = `")));`

	start := strings.Index(s, prefix)
	if start == -1 {
		return "", false
	}
	rest := s[start+len(prefix):]

	end := strings.Index(rest, suffix)
	if end == -1 {
		return "", false
	}
	return rest[:end], true
}
