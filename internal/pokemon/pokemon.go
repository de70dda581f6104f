// Package pokemon defines the Pokémon records served by the API.
package pokemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidType = errors.New("invalid pokemon type")
	ErrMissingName = errors.New("pokemon name is required")
)

// Type is one of the enumerated Pokémon type tags.
type Type string

const (
	Grass    Type = "Grass"
	Poison   Type = "Poison"
	Fire     Type = "Fire"
	Flying   Type = "Flying"
	Water    Type = "Water"
	Bug      Type = "Bug"
	Normal   Type = "Normal"
	Electric Type = "Electric"
	Ground   Type = "Ground"
	Fairy    Type = "Fairy"
	Fighting Type = "Fighting"
	Psychic  Type = "Psychic"
	Rock     Type = "Rock"
	Steel    Type = "Steel"
	Ice      Type = "Ice"
	Ghost    Type = "Ghost"
	Dragon   Type = "Dragon"
)

// AllTypes lists every type tag in schema declaration order.
var AllTypes = []Type{
	Grass, Poison, Fire, Flying, Water, Bug, Normal, Electric, Ground,
	Fairy, Fighting, Psychic, Rock, Steel, Ice, Ghost, Dragon,
}

// IsValid reports whether t is one of the enumerated type tags.
func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// ParseType converts s to a Type. Matching is exact.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// ID is an opaque record identifier. Datasets may carry it as a string or a number.
type ID string

// UnmarshalJSON accepts both JSON strings and numbers.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("id must be a scalar, got %v", node.Kind)
	}
	*id = ID(node.Value)
	return nil
}

// NewID returns a random identifier of the given length.
func NewID(length int) ID {
	if length <= 0 {
		length = 8
	}
	return ID(gonanoid.MustGenerate("0123456789abcdefghijklmnopqrstuvwxyz", length))
}

// PhysicalSpecs is a (minimum, maximum) pair of free-text magnitudes such as "6.04kg".
type PhysicalSpecs struct {
	Minimum string `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum string `json:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// EvolutionRequirements describes what is needed to evolve, e.g. 25 "Bulbasaur candies".
type EvolutionRequirements struct {
	Amount int    `json:"amount" yaml:"amount"`
	Name   string `json:"name" yaml:"name"`
}

// Attack is a single move. Name is its identity.
type Attack struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Damage int    `json:"damage" yaml:"damage"`
}

// Attacks groups the fast and special moves of a Pokémon.
type Attacks struct {
	Fast    []*Attack `json:"fast" yaml:"fast"`
	Special []*Attack `json:"special" yaml:"special"`
}

// Pokemon is a single record. Records created at runtime only carry ID, Name and
// Classification; every other field is left at its zero value.
type Pokemon struct {
	ID                    ID                     `json:"id" yaml:"id"`
	Name                  string                 `json:"name" yaml:"name"`
	Classification        *string                `json:"classification,omitempty" yaml:"classification,omitempty"`
	Types                 []Type                 `json:"types,omitempty" yaml:"types,omitempty"`
	Resistant             []string               `json:"resistant,omitempty" yaml:"resistant,omitempty"`
	Weaknesses            []string               `json:"weaknesses,omitempty" yaml:"weaknesses,omitempty"`
	Weight                *PhysicalSpecs         `json:"weight,omitempty" yaml:"weight,omitempty"`
	Height                *PhysicalSpecs         `json:"height,omitempty" yaml:"height,omitempty"`
	FleeRate              *float64               `json:"fleeRate,omitempty" yaml:"fleeRate,omitempty"`
	EvolutionRequirements *EvolutionRequirements `json:"evolutionRequirements,omitempty" yaml:"evolutionRequirements,omitempty"`
	Evolutions            []*Pokemon             `json:"evolutions,omitempty" yaml:"evolutions,omitempty"`
	MaxCP                 *int                   `json:"maxCP,omitempty" yaml:"maxCP,omitempty"`
	MaxHP                 *int                   `json:"maxHP,omitempty" yaml:"maxHP,omitempty"`
	Attacks               *Attacks               `json:"attacks,omitempty" yaml:"attacks,omitempty"`
}

// Validate checks the fields a dataset record must get right for the schema to
// serialize it: a name and known type tags.
func (p *Pokemon) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	for _, t := range p.Types {
		if !t.IsValid() {
			return fmt.Errorf("%s: %w: %q", p.Name, ErrInvalidType, t)
		}
	}
	for _, evo := range p.Evolutions {
		if evo == nil {
			continue
		}
		for _, t := range evo.Types {
			if !t.IsValid() {
				return fmt.Errorf("%s evolution %s: %w: %q", p.Name, evo.Name, ErrInvalidType, t)
			}
		}
	}
	return nil
}

// HasType reports whether t is among the Pokémon's types.
func (p *Pokemon) HasType(t Type) bool {
	for _, v := range p.Types {
		if v == t {
			return true
		}
	}
	return false
}

// HasWeakness reports whether the weaknesses list contains s.
func (p *Pokemon) HasWeakness(s string) bool {
	return contains(p.Weaknesses, s)
}

// HasResistance reports whether the resistant list contains s.
func (p *Pokemon) HasResistance(s string) bool {
	return contains(p.Resistant, s)
}

// AllAttacks returns the fast attacks followed by the special attacks.
func (p *Pokemon) AllAttacks() []*Attack {
	if p.Attacks == nil {
		return nil
	}
	result := make([]*Attack, 0, len(p.Attacks.Fast)+len(p.Attacks.Special))
	result = append(result, p.Attacks.Fast...)
	result = append(result, p.Attacks.Special...)
	return result
}

// ClassificationString returns the classification or "" when unset.
func (p *Pokemon) ClassificationString() string {
	if p.Classification == nil {
		return ""
	}
	return *p.Classification
}

// Clone returns a shallow copy of p. Slices and nested values are shared.
func (p *Pokemon) Clone() *Pokemon {
	c := *p
	return &c
}

// FormatNumber renders a numeric ID as a zero-padded Pokédex number ("1" -> "#001").
// Non-numeric IDs are returned unchanged.
func (id ID) FormatNumber() string {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return string(id)
	}
	return fmt.Sprintf("#%03d", n)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
