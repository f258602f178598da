// Package input loads puzzle inputs from <dir>/<year>/day_DD.txt, optionally
// compressed with zstd (.txt.zst) or lz4 (.txt.lz4).
package input

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/puzzlekit"
)

// Compression identifies how an input file is stored.
type Compression uint8

const (
	// CompressionNone is a plain text input.
	CompressionNone Compression = iota
	// CompressionZSTD is a zstd frame (.zst).
	CompressionZSTD
	// CompressionLZ4 is an lz4 frame (.lz4).
	CompressionLZ4
)

// Suffix returns the file suffix for the compression.
func (c Compression) Suffix() string {
	switch c {
	case CompressionZSTD:
		return ".txt.zst"
	case CompressionLZ4:
		return ".txt.lz4"
	default:
		return ".txt"
	}
}

// ParseCompression maps "none", "zst" or "lz4" to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none", "txt":
		return CompressionNone, nil
	case "zst", "zstd":
		return CompressionZSTD, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", s)
	}
}

// lookup order when loading
var compressions = []Compression{CompressionNone, CompressionZSTD, CompressionLZ4}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress encodes data with c.
func Compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
}

// Decompress decodes data stored with c.
func Decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
}

// Loader reads inputs for one puzzle year.
type Loader struct {
	dir    string
	year   int
	logger *puzzlekit.Logger
}

// NewLoader creates a Loader rooted at dir. A nil logger discards output.
func NewLoader(dir string, year int, logger *puzzlekit.Logger) *Loader {
	if logger == nil {
		logger = puzzlekit.NoopLogger()
	}
	return &Loader{dir: dir, year: year, logger: logger}
}

// Path returns the uncompressed input path for day.
func (l *Loader) Path(day int) string {
	return l.path(day, CompressionNone)
}

func (l *Loader) path(day int, c Compression) string {
	return filepath.Join(l.dir, fmt.Sprint(l.year), fmt.Sprintf("day_%02d%s", day, c.Suffix()))
}

// Load returns the decompressed input for day, trying the plain file first.
// It returns an error wrapping puzzlekit.ErrInputNotFound if no variant
// exists.
func (l *Loader) Load(ctx context.Context, day int) ([]byte, error) {
	for _, c := range compressions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := l.path(day, c)
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			l.logger.LogInput(ctx, path, 0, err)
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		data, err := Decompress(c, raw)
		if err != nil {
			l.logger.LogInput(ctx, path, 0, err)
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
		l.logger.LogInput(ctx, path, len(data), nil)
		return data, nil
	}
	return nil, fmt.Errorf("%w: day %d (looked for %s)", puzzlekit.ErrInputNotFound, day, l.Path(day))
}

// Pack compresses the plain input for day with c, writes it next to the
// original and returns the written path.
func (l *Loader) Pack(ctx context.Context, day int, c Compression) (string, error) {
	data, err := l.Load(ctx, day)
	if err != nil {
		return "", err
	}
	packed, err := Compress(c, data)
	if err != nil {
		return "", err
	}
	path := l.path(day, c)
	if err := os.WriteFile(path, packed, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
