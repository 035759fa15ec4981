// SPDX-License-Identifier: MIT

// Package codec writes and reads orbit results as JSON, YAML or CBOR,
// optionally compressed with zstd or lz4 (frame format).
//
// CBOR output uses Core Deterministic Encoding (RFC 8949 §4.2): the same
// result always produces identical bytes. CBOR field names come from the
// json struct tags.
//
// Writer stack:
//
//	w ← compressor (none | zstd | lz4) ← encoder (json | yaml | cbor) ← v
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for an unrecognized format name.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrUnknownCompression is returned for an unrecognized compression name.
	ErrUnknownCompression = errors.New("codec: unknown compression")
)

// Format is an encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Compression is a stream compressor.
type Compression string

const (
	CompressNone Compression = "none"
	CompressZstd Compression = "zstd"
	CompressLZ4  Compression = "lz4"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding.
var encMode cbor.EncMode

func init() {
	var err error
	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
}

// ParseFormat maps a name to a Format; "" means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatCBOR:
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
	}
}

// ParseCompression maps a name to a Compression; "" means none.
func ParseCompression(s string) (Compression, error) {
	switch Compression(strings.ToLower(strings.TrimSpace(s))) {
	case "", CompressNone:
		return CompressNone, nil
	case CompressZstd, "zst":
		return CompressZstd, nil
	case CompressLZ4:
		return CompressLZ4, nil
	default:
		return "", fmt.Errorf("ParseCompression: %q: %w", s, ErrUnknownCompression)
	}
}

// FormatFromPath infers format and compression from an output file name,
// e.g. "orbit.cbor.zst" → (cbor, zstd). Unknown extensions yield
// (json, none).
func FormatFromPath(path string) (Format, Compression) {
	name := strings.ToLower(filepath.Base(path))
	c := CompressNone
	switch filepath.Ext(name) {
	case ".zst", ".zstd":
		c = CompressZstd
		name = strings.TrimSuffix(name, filepath.Ext(name))
	case ".lz4":
		c = CompressLZ4
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
	if err != nil {
		f = FormatJSON
	}

	return f, c
}

// Write encodes v to w.
func Write(w io.Writer, v any, f Format, c Compression) (err error) {
	cw, err := compressor(w, c)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Write: closing %s stream: %w", c, cerr)
		}
	}()

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(cw)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(cw)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case FormatCBOR:
		err = encMode.NewEncoder(cw).Encode(v)
	default:
		return fmt.Errorf("Write: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Write: encoding %s: %w", f, err)
	}

	return nil
}

// Read decodes one value from r into v.
func Read(r io.Reader, v any, f Format, c Compression) error {
	cr, closeFn, err := decompressor(r, c)
	if err != nil {
		return err
	}
	defer closeFn()

	switch f {
	case FormatJSON:
		err = json.NewDecoder(cr).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(cr).Decode(v)
	case FormatCBOR:
		err = cbor.NewDecoder(cr).Decode(v)
	default:
		return fmt.Errorf("Read: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Read: decoding %s: %w", f, err)
	}

	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressNone, "":
		return nopCloser{w}, nil
	case CompressZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return zw, nil
	case CompressLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("Write: %q: %w", c, ErrUnknownCompression)
	}
}

func decompressor(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressNone, "":
		return r, func() {}, nil
	case CompressZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd reader: %w", err)
		}
		return zr, zr.Close, nil
	case CompressLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("Read: %q: %w", c, ErrUnknownCompression)
	}
}
