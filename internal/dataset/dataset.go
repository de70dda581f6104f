// Package dataset loads the Pokémon records served at startup.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pokeql/pokeql/internal/pokemon"
)

//go:embed pokemon.json
var embedded []byte

var ErrUnknownFormat = errors.New("unknown dataset format")

// Format is the encoding of a dataset document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// S3Options configures access to s3:// sources.
type S3Options struct {
	Region    string
	Endpoint  string
	PathStyle bool
}

// Source describes where to load records from. An empty Location selects the
// embedded dataset; "s3://bucket/key" reads from object storage; anything else
// is a local file path.
type Source struct {
	Location string
	S3       S3Options
}

// IsEmbedded reports whether the source selects the built-in dataset.
func (s Source) IsEmbedded() bool {
	return s.Location == ""
}

// Load reads and validates the records of a source.
func Load(ctx context.Context, src Source) ([]*pokemon.Pokemon, error) {
	switch {
	case src.IsEmbedded():
		return Decode(bytes.NewReader(embedded), FormatJSON)

	case strings.HasPrefix(src.Location, "s3://"):
		bucket, key, err := parseS3URL(src.Location)
		if err != nil {
			return nil, err
		}
		format, err := FormatFromPath(key)
		if err != nil {
			return nil, err
		}
		body, err := fetchS3(ctx, src.S3, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", src.Location, err)
		}
		defer body.Close()
		return Decode(body, format)

	default:
		format, err := FormatFromPath(src.Location)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(src.Location)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Decode(f, format)
	}
}

// Decode parses a list of records and validates each one.
func Decode(r io.Reader, format Format) ([]*pokemon.Pokemon, error) {
	var records []*pokemon.Pokemon

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding json dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("decoding yaml dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	for i, p := range records {
		if p == nil {
			return nil, fmt.Errorf("record %d is empty", i)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return records, nil
}
