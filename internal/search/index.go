// Package search provides full-text search over Pokémon records using Bleve.
package search

import (
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/pokeql/pokeql/internal/pokemon"
)

// DefaultSearchLimit is the default maximum number of search results.
const DefaultSearchLimit = 100

// Index wraps a Bleve in-memory index. Documents are keyed by the record's
// position in the store, since record IDs are not guaranteed to be unique.
type Index struct {
	index bleve.Index
}

// pokemonDocument is the structure stored in the Bleve index.
type pokemonDocument struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Classification string   `json:"classification"`
	Types          []string `json:"types"`
	Weaknesses     []string `json:"weaknesses"`
	Resistant      []string `json:"resistant"`
	Attacks        []string `json:"attacks"`
}

// NewIndex creates a new in-memory Bleve index.
func NewIndex() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = "standard"

	keywordFieldMapping := bleve.NewKeywordFieldMapping()

	pokemonMapping := bleve.NewDocumentMapping()
	pokemonMapping.AddFieldMappingsAt("id", keywordFieldMapping)
	pokemonMapping.AddFieldMappingsAt("name", textFieldMapping)
	pokemonMapping.AddFieldMappingsAt("classification", textFieldMapping)
	pokemonMapping.AddFieldMappingsAt("types", textFieldMapping)
	pokemonMapping.AddFieldMappingsAt("weaknesses", textFieldMapping)
	pokemonMapping.AddFieldMappingsAt("resistant", textFieldMapping)
	pokemonMapping.AddFieldMappingsAt("attacks", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = pokemonMapping
	indexMapping.DefaultAnalyzer = "standard"
	indexMapping.IndexDynamic = false
	indexMapping.StoreDynamic = false
	indexMapping.ScoringModel = "bm25"

	return indexMapping
}

// Close closes the index.
func (idx *Index) Close() error {
	return idx.index.Close()
}

func newDocument(p *pokemon.Pokemon) pokemonDocument {
	doc := pokemonDocument{
		ID:             string(p.ID),
		Name:           p.Name,
		Classification: p.ClassificationString(),
		Weaknesses:     p.Weaknesses,
		Resistant:      p.Resistant,
	}
	for _, t := range p.Types {
		doc.Types = append(doc.Types, string(t))
	}
	for _, a := range p.AllAttacks() {
		if a != nil {
			doc.Attacks = append(doc.Attacks, a.Name)
		}
	}
	return doc
}

// IndexPokemon adds or replaces the document at the given store position.
func (idx *Index) IndexPokemon(pos int, p *pokemon.Pokemon) error {
	return idx.index.Index(strconv.Itoa(pos), newDocument(p))
}

// IndexAll indexes records in a batch, using their slice positions as keys.
func (idx *Index) IndexAll(records []*pokemon.Pokemon) error {
	return idx.IndexFrom(0, records)
}

// IndexFrom indexes records in a single batch keyed from store position start.
// Nothing is indexed when the batch fails.
func (idx *Index) IndexFrom(start int, records []*pokemon.Pokemon) error {
	batch := idx.index.NewBatch()
	for i, p := range records {
		if err := batch.Index(strconv.Itoa(start+i), newDocument(p)); err != nil {
			return err
		}
	}
	return idx.index.Batch(batch)
}

// Search executes a query-string query and returns matching store positions in
// relevance order. A limit <= 0 uses DefaultSearchLimit.
//
// The query string syntax supports plain terms ("seed"), wildcards ("char*"),
// phrases and field scoping ("types:fire", "attacks:ember").
func (idx *Index) Search(queryStr string, limit int) ([]int, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	query := bleve.NewQueryStringQuery(queryStr)
	req := bleve.NewSearchRequest(query)
	req.Size = limit

	result, err := idx.index.Search(req)
	if err != nil {
		return nil, err
	}

	positions := make([]int, 0, len(result.Hits))
	for _, hit := range result.Hits {
		pos, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
