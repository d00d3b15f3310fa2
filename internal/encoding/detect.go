package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Field ticketing devices export offense batches in whatever encoding
// their firmware ships with: UTF-8 (with or without BOM), UTF-16, or a
// Windows codepage. DecodeReader normalizes all of them to UTF-8 so the
// intake parser only ever sees one encoding.

const sniffLen = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeReader wraps r in a reader that yields UTF-8. A BOM wins if
// present; otherwise valid UTF-8 passes through untouched, and anything
// else goes through charset detection with Windows-1252 as the fallback.
func DecodeReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	if decoded, ok := decodeBOM(br, head); ok {
		return decoded, nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	return decodeDetected(br, head), nil
}

// decodeBOM handles the three byte-order marks. The UTF-8 BOM is stripped;
// UTF-16 input is decoded.
func decodeBOM(br *bufio.Reader, head []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, true
	case bytes.HasPrefix(head, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), true
	case bytes.HasPrefix(head, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), true
	}

	return nil, false
}

// decodeDetected picks a single-byte decoder from chardet's best guess.
func decodeDetected(br *bufio.Reader, head []byte) io.Reader {
	detector := chardet.NewTextDetector()

	if result, err := detector.DetectBest(head); err == nil {
		switch result.Charset {
		case "UTF-8":
			return br
		case "ISO-8859-1", "windows-1252":
			return transform.NewReader(br, charmap.Windows1252.NewDecoder())
		case "ISO-8859-15":
			return transform.NewReader(br, charmap.ISO8859_15.NewDecoder())
		}
	}

	// Unrecognized charsets are read as Windows-1252; every byte decodes,
	// so intake can at least surface the rows for manual correction.
	return transform.NewReader(br, charmap.Windows1252.NewDecoder())
}
