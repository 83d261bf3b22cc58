// Package ingest loads KakaoTalk transcript exports from disk.
//
// Exports produced on Windows are frequently CP949/EUC-KR encoded rather
// than UTF-8, and macOS exports carry a UTF-8 BOM. The loader normalizes
// all of these into plain UTF-8 text with LF line endings so the parsing
// layers can assume a single representation.
package ingest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Charset names accepted by LoadOptions.Charset.
const (
	CharsetAuto  = "auto"
	CharsetUTF8  = "utf-8"
	CharsetEUCKR = "euc-kr"
	CharsetCP949 = "cp949"
)

// LoadOptions controls transcript loading.
type LoadOptions struct {
	// Charset forces a source encoding. "auto" (the default) accepts valid
	// UTF-8 as-is and falls back to CP949 decoding otherwise.
	Charset string
}

// Transcript is a loaded, normalized transcript.
type Transcript struct {
	// Text is the full transcript as UTF-8 with LF line endings.
	Text string

	// ContentHash is the hex-encoded SHA-256 of the raw file bytes.
	ContentHash string

	// SourcePath is the absolute path the transcript was read from,
	// empty when loaded from bytes.
	SourcePath string

	// Encoding is the source encoding that was detected or forced.
	Encoding string
}

// utf8BOM is the byte order mark some editors and the macOS Kakao client
// prepend to exported text files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadFile reads and normalizes a transcript from a file path.
func LoadFile(path string, opts LoadOptions) (*Transcript, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	t, err := LoadBytes(data, opts)
	if err != nil {
		return nil, err
	}
	t.SourcePath = absPath
	return t, nil
}

// LoadBytes normalizes a transcript from raw bytes.
func LoadBytes(data []byte, opts LoadOptions) (*Transcript, error) {
	hash := sha256.Sum256(data)

	charset := opts.Charset
	if charset == "" {
		charset = CharsetAuto
	}

	decoded, encoding, err := decodeCharset(data, charset)
	if err != nil {
		return nil, err
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return &Transcript{
		Text:        text,
		ContentHash: hex.EncodeToString(hash[:]),
		Encoding:    encoding,
	}, nil
}

// decodeCharset converts raw transcript bytes to UTF-8 and reports the
// encoding that was applied.
func decodeCharset(data []byte, charset string) ([]byte, string, error) {
	switch strings.ToLower(charset) {
	case CharsetUTF8:
		return bytes.TrimPrefix(data, utf8BOM), CharsetUTF8, nil

	case CharsetEUCKR, CharsetCP949:
		decoded, err := decodeEUCKR(data)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode %s transcript: %w", charset, err)
		}
		return decoded, CharsetCP949, nil

	case CharsetAuto:
		trimmed := bytes.TrimPrefix(data, utf8BOM)
		if utf8.Valid(trimmed) {
			return trimmed, CharsetUTF8, nil
		}
		decoded, err := decodeEUCKR(data)
		if err != nil {
			return nil, "", fmt.Errorf("transcript is neither UTF-8 nor CP949: %w", err)
		}
		return decoded, CharsetCP949, nil

	default:
		return nil, "", fmt.Errorf("unsupported charset %q", charset)
	}
}

// decodeEUCKR decodes CP949/EUC-KR bytes into UTF-8.
func decodeEUCKR(data []byte) ([]byte, error) {
	reader := transform.NewReader(bytes.NewReader(data), korean.EUCKR.NewDecoder())
	return io.ReadAll(reader)
}
