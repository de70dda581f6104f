package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pokeql/pokeql/internal/pokemon"
)

func TestLoadEmbedded(t *testing.T) {
	records, err := Load(context.Background(), Source{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) == 0 {
		t.Fatal("embedded dataset is empty")
	}

	first := records[0]
	if first.ID != "001" || first.Name != "Bulbasaur" {
		t.Errorf("first record = (%s, %s), want (001, Bulbasaur)", first.ID, first.Name)
	}
	if len(first.Evolutions) != 2 || first.Evolutions[0].ID != "2" {
		t.Errorf("numeric evolution ids should decode, got %+v", first.Evolutions)
	}
	if first.Attacks == nil || len(first.Attacks.Fast) == 0 {
		t.Error("attacks not decoded")
	}
	if first.FleeRate == nil || *first.FleeRate != 0.1 {
		t.Errorf("fleeRate = %v, want 0.1", first.FleeRate)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "dex.yaml")
	yamlDoc := `- id: 152
  name: Chikorita
  classification: Leaf Pokémon
  types: [Grass]
  weaknesses: [Fire, Ice]
  attacks:
    fast:
      - {name: Tackle, type: Normal, damage: 12}
    special: []
`
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := Load(context.Background(), Source{Location: yamlPath})
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	p := records[0]
	if p.ID != "152" || p.Name != "Chikorita" || p.ClassificationString() != "Leaf Pokémon" {
		t.Errorf("record = %+v", p)
	}
	if !p.HasType(pokemon.Grass) || !p.HasWeakness("Ice") {
		t.Errorf("lists not decoded: %+v", p)
	}

	jsonPath := filepath.Join(dir, "dex.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"id":"x","name":"Mew","types":["Psychic"]}]`), 0644); err != nil {
		t.Fatal(err)
	}
	records, err = Load(context.Background(), Source{Location: jsonPath})
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	if len(records) != 1 || records[0].Name != "Mew" {
		t.Errorf("records = %+v", records)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(context.Background(), Source{Location: filepath.Join(dir, "dex.csv")})
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("error = %v, want ErrUnknownFormat", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), Source{Location: filepath.Join(dir, "missing.json")})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`[{"id":"1","name":"Umbreon","types":["Dark"]}]`), FormatJSON)
		if !errors.Is(err, pokemon.ErrInvalidType) {
			t.Errorf("error = %v, want ErrInvalidType", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`[{"id":"1"}]`), FormatJSON)
		if !errors.Is(err, pokemon.ErrMissingName) {
			t.Errorf("error = %v, want ErrMissingName", err)
		}
	})

	t.Run("null record", func(t *testing.T) {
		if _, err := Decode(strings.NewReader(`[null]`), FormatJSON); err == nil {
			t.Error("expected error for null record")
		}
	})

	t.Run("bad s3 url", func(t *testing.T) {
		if _, err := Load(context.Background(), Source{Location: "s3://bucket-only"}); err == nil {
			t.Error("expected error for s3 url without key")
		}
	})
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := parseS3URL("s3://dex-data/gen1/pokemon.json")
	if err != nil {
		t.Fatalf("parseS3URL() error = %v", err)
	}
	if bucket != "dex-data" || key != "gen1/pokemon.json" {
		t.Errorf("parseS3URL() = (%q, %q)", bucket, key)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json": FormatJSON,
		"a.YML":  FormatYAML,
		"a.yaml": FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = (%q, %v), want %q", path, got, err, want)
		}
	}
}
