package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/c360studio/bibgraph/rdf"
)

// Model is the compiled, immutable form of a Config. All class references
// are resolved to absolute IRIs at construction; every lookup afterwards is
// read-only, so a Model can be shared freely while a conversion is running.
// Editing configuration means building a new Model, never mutating one.
type Model struct {
	baseURI          string
	namespaces       map[string]string
	classes          map[string][]rdf.IRI
	publicationTypes map[string]rdf.IRI
	columns          map[string]string
	keywordColumns   []string
	outputFormat     string
	inspectionDate   string
}

// NewModel compiles a raw Config into a Model. Returns a *ConfigError when
// a required section is missing or any class reference uses a prefix with
// no namespace binding.
func NewModel(cfg *Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		baseURI:          cfg.BaseURI,
		namespaces:       make(map[string]string, len(cfg.Namespaces)),
		classes:          make(map[string][]rdf.IRI, len(cfg.EntityTypes.Categories)),
		publicationTypes: make(map[string]rdf.IRI, len(cfg.EntityTypes.PublicationTypes)),
		columns:          make(map[string]string, len(cfg.ColumnMappings)),
		keywordColumns:   append([]string(nil), cfg.KeywordSettings.Columns...),
		outputFormat:     cfg.Settings.OutputFormat,
		inspectionDate:   resolveInspectionDate(cfg.Settings.InspectionDate),
	}
	for prefix, uri := range cfg.Namespaces {
		if prefix == "" || uri == "" {
			return nil, &ConfigError{Section: "namespaces", Reason: "empty prefix or namespace URI"}
		}
		m.namespaces[prefix] = uri
	}
	for field, header := range cfg.ColumnMappings {
		m.columns[field] = header
	}

	for category, refs := range cfg.EntityTypes.Categories {
		for _, ref := range refs {
			if ref == "" {
				continue
			}
			iri, err := m.ResolveTerm(ref)
			if err != nil {
				return nil, &ConfigError{
					Section: "entity_types",
					Reason:  fmt.Sprintf("category %q: %v", category, err),
				}
			}
			m.classes[category] = append(m.classes[category], iri)
		}
	}
	for kind, ref := range cfg.EntityTypes.PublicationTypes {
		if ref == "" {
			continue
		}
		iri, err := m.ResolveTerm(ref)
		if err != nil {
			return nil, &ConfigError{
				Section: "entity_types",
				Reason:  fmt.Sprintf("publication_types %q: %v", kind, err),
			}
		}
		m.publicationTypes[kind] = iri
	}

	return m, nil
}

// resolveInspectionDate turns the "today" sentinel into the current ISO
// date; anything else passes through as written.
func resolveInspectionDate(value string) string {
	if value == "" || value == "today" {
		return time.Now().Format("2006-01-02")
	}
	return value
}

// BaseURI returns the namespace under which entity IRIs are minted.
func (m *Model) BaseURI() string { return m.baseURI }

// ResolveNamespace returns the namespace URI bound to a prefix.
func (m *Model) ResolveNamespace(prefix string) (string, bool) {
	uri, ok := m.namespaces[prefix]
	return uri, ok
}

// Prefixes returns a copy of the namespace bindings for serializer use.
func (m *Model) Prefixes() map[string]string {
	out := make(map[string]string, len(m.namespaces))
	for p, uri := range m.namespaces {
		out[p] = uri
	}
	return out
}

// ClassesFor returns the RDF class IRIs asserted for an entity category,
// nil when the category is unknown.
func (m *Model) ClassesFor(category string) []rdf.IRI {
	return m.classes[category]
}

// PublicationType returns the extra class IRI configured for a detected
// publication kind (journal, conference, book_series).
func (m *Model) PublicationType(kind string) (rdf.IRI, bool) {
	iri, ok := m.publicationTypes[kind]
	return iri, ok
}

// ColumnFor returns the CSV column header mapped to a logical field.
func (m *Model) ColumnFor(field string) (string, bool) {
	header, ok := m.columns[field]
	return header, ok
}

// KeywordColumns returns the CSV column headers carrying delimited
// keywords, in configuration order.
func (m *Model) KeywordColumns() []string {
	return append([]string(nil), m.keywordColumns...)
}

// OutputFormat returns the configured serialization format name.
func (m *Model) OutputFormat() string { return m.outputFormat }

// InspectionDate returns the ISO date stamped on citation observations.
func (m *Model) InspectionDate() string { return m.inspectionDate }

// ResolveTerm resolves a "prefix:local" reference to an absolute IRI
// through the namespace bindings. A reference without a colon is treated
// as an already-absolute IRI.
func (m *Model) ResolveTerm(ref string) (rdf.IRI, error) {
	prefix, local, found := strings.Cut(ref, ":")
	if !found || strings.HasPrefix(local, "//") {
		// Absolute IRI (or bare token) used verbatim.
		return rdf.IRI{Value: ref}, nil
	}
	ns, ok := m.namespaces[prefix]
	if !ok {
		return rdf.IRI{}, fmt.Errorf("unbound namespace prefix %q in %q (bound: %s)",
			prefix, ref, strings.Join(m.boundPrefixes(), ", "))
	}
	return rdf.IRI{Value: ns + local}, nil
}

func (m *Model) boundPrefixes() []string {
	out := make([]string, 0, len(m.namespaces))
	for p := range m.namespaces {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
