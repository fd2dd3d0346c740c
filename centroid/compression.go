package centroid

import (
	"bytes"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm of a stored table.
type CompressionType uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone CompressionType = 0
	// CompressionLZ4 indicates an LZ4 frame (".lz4").
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD indicates a Zstandard frame (".zst").
	CompressionZSTD CompressionType = 2
)

// DetectCompression returns the compression of a blob from its name and the
// name with the compression suffix removed.
func DetectCompression(name string) (CompressionType, string) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return CompressionZSTD, strings.TrimSuffix(name, ".zst")
	case strings.HasSuffix(name, ".lz4"):
		return CompressionLZ4, strings.TrimSuffix(name, ".lz4")
	default:
		return CompressionNone, name
	}
}

func decompress(data []byte, compressionType CompressionType) ([]byte, error) {
	switch compressionType {
	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return data, nil
	}
}

// Compress encodes a table for storage under a name with the matching suffix.
func Compress(data []byte, compressionType CompressionType) ([]byte, error) {
	switch compressionType {
	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
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
		return data, nil
	}
}
