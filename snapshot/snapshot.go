package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/husein14azimi/house-price-prediction-simple-lr/compress"
	"github.com/husein14azimi/house-price-prediction-simple-lr/housing"
	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/options"
)

// Config holds configuration for a snapshot operation.
type Config struct {
	// Compression overrides the codec inferred from the file extension.
	Compression compress.CompressionType
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithCompression forces a specific codec regardless of the file extension.
func WithCompression(ct compress.CompressionType) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Compression = ct
	})
}

// Save writes the listing collection to path. Unless WithCompression is
// given, the codec is inferred from the extension (see the package
// documentation). Parent directories are created as needed.
func Save(path string, listings []housing.Listing, opts ...Option) error {
	cfg := Config{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return fmt.Errorf("invalid snapshot option: %w", err)
	}
	if cfg.Compression == 0 {
		cfg.Compression = InferCompression(path)
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return fmt.Errorf("selecting snapshot codec: %w", err)
	}

	if listings == nil {
		listings = []housing.Listing{}
	}
	payload, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	data, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compressing snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// Load reads a listing collection from path. Unless WithCompression is
// given, the codec is inferred from the extension. Every loaded listing is
// validated.
func Load(path string, opts ...Option) ([]housing.Listing, error) {
	cfg := Config{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid snapshot option: %w", err)
	}
	if cfg.Compression == 0 {
		cfg.Compression = InferCompression(path)
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, fmt.Errorf("selecting snapshot codec: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	payload, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompressing snapshot: %w", err)
	}

	var listings []housing.Listing
	if err := json.Unmarshal(payload, &listings); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	for i, l := range listings {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("snapshot listing %d (%s): %w", i, l.ID, err)
		}
	}

	return listings, nil
}

// InferCompression maps a snapshot file extension to its codec. Unknown
// extensions fall back to no compression.
func InferCompression(path string) compress.CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return compress.CompressionZstd
	case ".s2":
		return compress.CompressionS2
	case ".lz4":
		return compress.CompressionLZ4
	default:
		return compress.CompressionNone
	}
}
