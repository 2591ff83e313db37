// Package config provides configuration loading and the compiled mapping
// model for bibgraph conversions.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Field names recognized in the column_mappings section. Each maps a logical
// bibliographic field to the CSV column header that carries it.
const (
	FieldIdentifier          = "main_entity_identifier"
	FieldTitle               = "title"
	FieldAbstract            = "abstract"
	FieldYear                = "year"
	FieldVolume              = "volume"
	FieldIssue               = "issue"
	FieldPageStart           = "page_start"
	FieldPageEnd             = "page_end"
	FieldDOI                 = "doi"
	FieldLink                = "link"
	FieldSourceTitle         = "source_title"
	FieldAuthorIDs           = "author_ids"
	FieldAuthorFullNames     = "author_full_names"
	FieldAuthorAbbreviations = "author_abbreviations"
	FieldFundingDetails      = "funding_details"
	FieldCitedBy             = "cited_by"
)

// Entity category names recognized in the entity_types section.
const (
	CategoryArticle             = "scholarly_article"
	CategoryAuthor              = "author"
	CategoryKeyword             = "keyword"
	CategoryFundingOrganization = "funding_organization"
	CategoryCitationObservation = "citation_observation"
)

// Config represents the raw bibgraph configuration as loaded from YAML.
// It is compiled into an immutable Model before conversion; edits produce a
// new Config and a new Model, never an in-place mutation.
type Config struct {
	// BaseURI is the namespace under which entity IRIs are minted.
	BaseURI string `yaml:"base_uri"`
	// Namespaces binds prefixes to namespace IRIs.
	Namespaces map[string]string `yaml:"namespaces"`
	// EntityTypes maps entity categories to RDF class references.
	EntityTypes EntityTypes `yaml:"entity_types"`
	// ColumnMappings maps logical field names to CSV column headers.
	ColumnMappings map[string]string `yaml:"column_mappings"`
	// KeywordSettings lists CSV columns carrying delimited keywords.
	KeywordSettings KeywordSettings `yaml:"keyword_settings"`
	// Settings holds output options.
	Settings Settings `yaml:"settings"`
}

// EntityTypes holds category → class-reference rules plus the nested
// publication type table used by source-title detection.
type EntityTypes struct {
	// Categories maps an entity category to one or more prefixed class
	// references; each becomes a separate rdf:type assertion.
	Categories map[string]StringList
	// PublicationTypes maps a publication kind (journal, conference,
	// book_series) to an additional class reference.
	PublicationTypes map[string]string
}

// UnmarshalYAML decodes the entity_types mapping, splitting out the nested
// publication_types table from the flat category rules.
func (e *EntityTypes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("entity_types must be a mapping")
	}
	e.Categories = make(map[string]StringList)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		if keyNode.Value == "publication_types" {
			if err := valNode.Decode(&e.PublicationTypes); err != nil {
				return fmt.Errorf("publication_types: %w", err)
			}
			continue
		}
		var refs StringList
		if err := valNode.Decode(&refs); err != nil {
			return fmt.Errorf("entity type %q: %w", keyNode.Value, err)
		}
		e.Categories[keyNode.Value] = refs
	}
	return nil
}

// MarshalYAML renders entity_types back to the flat form it was loaded from.
func (e EntityTypes) MarshalYAML() (any, error) {
	out := make(map[string]any, len(e.Categories)+1)
	for cat, refs := range e.Categories {
		out[cat] = refs
	}
	if len(e.PublicationTypes) > 0 {
		out["publication_types"] = e.PublicationTypes
	}
	return out, nil
}

// StringList decodes either a YAML scalar or a sequence of scalars, so
// single-class categories can be written without list syntax.
type StringList []string

// UnmarshalYAML implements the scalar-or-sequence decoding.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = StringList(many)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings")
	}
}

// KeywordSettings configures which CSV columns carry delimited keywords.
type KeywordSettings struct {
	// Columns lists the CSV column headers to harvest keywords from.
	Columns []string `yaml:"columns"`
}

// Settings holds conversion output options.
type Settings struct {
	// OutputFormat selects the serialization (ttl, xml, n3, nt).
	OutputFormat string `yaml:"output_format"`
	// InspectionDate stamps citation observations; "today" resolves to the
	// current date at model build time.
	InspectionDate string `yaml:"inspection_date"`
}

// DefaultConfig returns a Config mirroring the Scopus CSV export layout.
func DefaultConfig() *Config {
	return &Config{
		BaseURI: "http://example.org/papers/",
		Namespaces: map[string]string{
			"schema": "https://schema.org/",
			"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
			"skos":   "http://www.w3.org/2004/02/skos/core#",
			"dct":    "http://purl.org/dc/terms/",
			"xsd":    "http://www.w3.org/2001/XMLSchema#",
		},
		EntityTypes: EntityTypes{
			Categories: map[string]StringList{
				CategoryArticle:             {"schema:ScholarlyArticle"},
				CategoryAuthor:              {"schema:Person"},
				CategoryKeyword:             {"skos:Concept"},
				CategoryFundingOrganization: {"schema:Organization"},
				CategoryCitationObservation: {"schema:Observation"},
			},
			PublicationTypes: map[string]string{},
		},
		ColumnMappings: map[string]string{
			FieldIdentifier:          "EID",
			FieldTitle:               "Title",
			FieldAbstract:            "Abstract",
			FieldYear:                "Year",
			FieldVolume:              "Volume",
			FieldIssue:               "Issue",
			FieldPageStart:           "Page start",
			FieldPageEnd:             "Page end",
			FieldDOI:                 "DOI",
			FieldLink:                "Link",
			FieldSourceTitle:         "Source title",
			FieldAuthorIDs:           "Author(s) ID",
			FieldAuthorFullNames:     "Author full names",
			FieldAuthorAbbreviations: "Authors",
			FieldFundingDetails:      "Funding Details",
			FieldCitedBy:             "Cited by",
		},
		KeywordSettings: KeywordSettings{
			Columns: []string{"Author Keywords", "Index Keywords"},
		},
		Settings: Settings{
			OutputFormat:   "ttl",
			InspectionDate: "today",
		},
	}
}

// Validate checks the structural requirements the raw config must meet
// before compilation. Namespace resolution is checked by NewModel.
func (c *Config) Validate() error {
	if c.BaseURI == "" {
		return &ConfigError{Section: "base_uri", Reason: "base_uri is required"}
	}
	if len(c.Namespaces) == 0 {
		return &ConfigError{Section: "namespaces", Reason: "at least one namespace binding is required"}
	}
	if len(c.EntityTypes.Categories) == 0 {
		return &ConfigError{Section: "entity_types", Reason: "at least one entity type rule is required"}
	}
	if len(c.ColumnMappings) == 0 {
		return &ConfigError{Section: "column_mappings", Reason: "column_mappings section is required"}
	}
	if _, ok := c.ColumnMappings[FieldIdentifier]; !ok {
		return &ConfigError{Section: "column_mappings", Reason: fmt.Sprintf("%s mapping is required", FieldIdentifier)}
	}
	for field, header := range c.ColumnMappings {
		if header == "" {
			return &ConfigError{Section: "column_mappings", Reason: fmt.Sprintf("mapping for %q is empty", field)}
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. Unknown YAML keys are
// rejected so header typos surface immediately.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration from YAML bytes. Decoding is strict:
// an unknown key is an error, not a silent fallthrough to the defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	config := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Section: "yaml", Reason: err.Error()}
	}
	return config, nil
}

// SaveToFile writes the configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one; other takes precedence for
// non-zero values. Map sections replace wholesale rather than merging
// per-key, matching how an edited config file supersedes the defaults.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.BaseURI != "" {
		c.BaseURI = other.BaseURI
	}
	if len(other.Namespaces) > 0 {
		c.Namespaces = other.Namespaces
	}
	if len(other.EntityTypes.Categories) > 0 {
		c.EntityTypes.Categories = other.EntityTypes.Categories
	}
	if len(other.EntityTypes.PublicationTypes) > 0 {
		c.EntityTypes.PublicationTypes = other.EntityTypes.PublicationTypes
	}
	if len(other.ColumnMappings) > 0 {
		c.ColumnMappings = other.ColumnMappings
	}
	if len(other.KeywordSettings.Columns) > 0 {
		c.KeywordSettings.Columns = other.KeywordSettings.Columns
	}
	if other.Settings.OutputFormat != "" {
		c.Settings.OutputFormat = other.Settings.OutputFormat
	}
	if other.Settings.InspectionDate != "" {
		c.Settings.InspectionDate = other.Settings.InspectionDate
	}
}
