package vocabulary

// Standard Vocabulary IRIs
//
// Commonly used W3C and semantic web standard IRIs. These are the default
// namespace bindings shipped with the tool; user configuration may rebind
// or extend them.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - SKOS: https://www.w3.org/TR/skos-reference/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
// - Schema.org: https://schema.org/

// Base namespace IRIs.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// SchemaNamespace is the schema.org namespace.
	SchemaNamespace = "https://schema.org/"

	// SKOSNamespace is the SKOS core namespace.
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"

	// DCTNamespace is the Dublin Core terms namespace.
	DCTNamespace = "http://purl.org/dc/terms/"
)

// RDF / RDFS terms.
const (
	// RDFType is the rdf:type predicate used for all class assertions.
	RDFType = RDFNamespace + "type"

	// RDFSLabel provides a human-readable name for a resource.
	RDFSLabel = RDFSNamespace + "label"
)

// XSD datatype IRIs used by the builder for typed literals.
const (
	// XSDGYear types a four-digit publication year.
	XSDGYear = XSDNamespace + "gYear"

	// XSDInteger types citation counts.
	XSDInteger = XSDNamespace + "integer"

	// XSDDate types observation dates.
	XSDDate = XSDNamespace + "date"
)

// DOIResolver is the resolver prefix for DOI sameAs links.
const DOIResolver = "https://doi.org/"
