package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/bibgraph/config"
	"github.com/c360studio/bibgraph/rdf"
	"github.com/c360studio/bibgraph/source"
	"github.com/c360studio/bibgraph/vocabulary"
)

// Prefixed property references the builder asserts. They resolve through
// the configured namespace bindings so a rebound prefix changes every
// property consistently.
const (
	propIdentifier      = "schema:identifier"
	propName            = "schema:name"
	propAbstract        = "schema:abstract"
	propVolume          = "schema:volumeNumber"
	propIssue           = "schema:issueNumber"
	propPageStart       = "schema:pageStart"
	propPageEnd         = "schema:pageEnd"
	propDatePublished   = "schema:datePublished"
	propSameAs          = "schema:sameAs"
	propURL             = "schema:url"
	propAuthor          = "schema:author"
	propFamilyName      = "schema:familyName"
	propGivenName       = "schema:givenName"
	propLabel           = "rdfs:label"
	propIsPartOf        = "schema:isPartOf"
	propFunding         = "schema:funding"
	propPrefLabel       = "skos:prefLabel"
	propSubject         = "dct:subject"
	propValue           = "schema:value"
	propObservationDate = "schema:observationDate"
)

// scalarFields maps logical fields carried over as plain string literals on
// the article subject to their property references.
var scalarFields = []struct {
	field    string
	property string
}{
	{config.FieldTitle, propName},
	{config.FieldAbstract, propAbstract},
	{config.FieldVolume, propVolume},
	{config.FieldIssue, propIssue},
	{config.FieldPageStart, propPageStart},
	{config.FieldPageEnd, propPageEnd},
}

// venueClassRefs maps a detected publication kind to the venue's schema
// class reference.
var venueClassRefs = map[PublicationKind]string{
	KindConference: "schema:Event",
	KindJournal:    "schema:Periodical",
	KindBookSeries: "schema:BookSeries",
}

// Builder converts row records into an RDF graph. It is immutable after
// construction and safe to reuse across conversions of the same model.
type Builder struct {
	model *config.Model
	props map[string]rdf.IRI
}

// New compiles the builder's property table against the model's namespace
// bindings. An unresolvable property prefix is a fatal configuration error,
// reported before any row is processed.
func New(model *config.Model) (*Builder, error) {
	b := &Builder{
		model: model,
		props: make(map[string]rdf.IRI),
	}

	refs := []string{
		propIdentifier, propName, propAbstract, propVolume, propIssue,
		propPageStart, propPageEnd, propDatePublished, propSameAs, propURL,
		propAuthor, propFamilyName, propGivenName, propLabel, propIsPartOf,
		propFunding, propPrefLabel, propSubject, propValue, propObservationDate,
	}
	for _, ref := range venueClassRefs {
		refs = append(refs, ref)
	}
	for _, ref := range refs {
		iri, err := model.ResolveTerm(ref)
		if err != nil {
			return nil, &config.ConfigError{Section: "namespaces", Reason: err.Error()}
		}
		b.props[ref] = iri
	}

	return b, nil
}

// BuildGraph is the one-call form: compile a builder for the model and
// convert the rows.
func BuildGraph(model *config.Model, rows []source.Row) (*rdf.Graph, *Report, error) {
	b, err := New(model)
	if err != nil {
		return nil, nil, err
	}
	g, report := b.Build(rows)
	return g, report, nil
}

// Build converts the rows, in row order, into a single graph. Rows missing
// the primary identifier are recorded as skipped and contribute nothing;
// every other issue is recoverable. The returned graph is owned by the
// caller.
func (b *Builder) Build(rows []source.Row) (*rdf.Graph, *Report) {
	g := rdf.NewGraph()
	report := NewReport()

	// Registries keyed by slug so repeated organizations and keywords are
	// described once per run; relation triples still attach per article.
	orgSeen := make(map[string]bool)
	keywordSeen := make(map[string]bool)

	idColumn, _ := b.model.ColumnFor(config.FieldIdentifier)
	for _, row := range rows {
		eid := vocabulary.Slug(row.Get(idColumn))
		if eid == "" {
			report.skip(row.Number, fmt.Sprintf("missing primary identifier in column %q", idColumn))
			continue
		}
		article := b.entity(eid)

		b.assertTypes(g, article, b.model.ClassesFor(config.CategoryArticle))
		g.Add(rdf.Triple{S: article, P: b.props[propIdentifier], O: rdf.String(eid)})

		b.addScalarFields(g, article, row)
		b.addYear(g, report, article, row)
		b.addLinks(g, article, row)
		b.addAuthors(g, article, row)
		b.addVenue(g, article, row)
		b.addFunding(g, article, row, orgSeen)
		b.addKeywords(g, article, row, keywordSeen)
		b.addCitationObservation(g, report, article, eid, row)

		report.RowsProcessed++
	}

	report.Triples = g.Len()
	return g, report
}

// entity mints an IRI under the configured base namespace.
func (b *Builder) entity(token string) rdf.IRI {
	return rdf.IRI{Value: vocabulary.EntityIRI(b.model.BaseURI(), token)}
}

// assertTypes adds one rdf:type triple per class.
func (b *Builder) assertTypes(g *rdf.Graph, subject rdf.IRI, classes []rdf.IRI) {
	for _, class := range classes {
		g.Add(rdf.Triple{S: subject, P: rdf.IRI{Value: vocabulary.RDFType}, O: class})
	}
}

// fieldValue reads the raw cell mapped to a logical field; ok is false when
// the field is unmapped or the value is not a usable literal.
func (b *Builder) fieldValue(row source.Row, field string) (string, bool) {
	column, ok := b.model.ColumnFor(field)
	if !ok {
		return "", false
	}
	value := row.Get(column)
	if !validLiteral(value) {
		return "", false
	}
	return value, true
}

// addScalarFields asserts one literal triple per mapped scalar field with a
// usable value. The value is preserved exactly as found in the cell.
func (b *Builder) addScalarFields(g *rdf.Graph, article rdf.IRI, row source.Row) {
	for _, sf := range scalarFields {
		if value, ok := b.fieldValue(row, sf.field); ok {
			g.Add(rdf.Triple{S: article, P: b.props[sf.property], O: rdf.String(value)})
		}
	}
}

// addYear asserts the publication year as an xsd:gYear literal. A value
// that is not a plausible year is stringified with a coercion warning.
func (b *Builder) addYear(g *rdf.Graph, report *Report, article rdf.IRI, row source.Row) {
	value, ok := b.fieldValue(row, config.FieldYear)
	if !ok {
		return
	}
	year := strings.TrimSpace(value)
	if _, err := strconv.Atoi(year); err != nil || len(year) != 4 {
		report.coerce(row.Number, config.FieldYear, fmt.Sprintf("%q is not a four-digit year, kept as plain string", value))
		g.Add(rdf.Triple{S: article, P: b.props[propDatePublished], O: rdf.String(value)})
		return
	}
	g.Add(rdf.Triple{S: article, P: b.props[propDatePublished], O: rdf.TypedLiteral(year, vocabulary.XSDGYear)})
}

// addLinks asserts the DOI sameAs reference and the direct URL.
func (b *Builder) addLinks(g *rdf.Graph, article rdf.IRI, row source.Row) {
	if doi, ok := b.fieldValue(row, config.FieldDOI); ok {
		g.Add(rdf.Triple{
			S: article,
			P: b.props[propSameAs],
			O: rdf.IRI{Value: vocabulary.DOIResolver + strings.TrimSpace(doi)},
		})
	}
	if link, ok := b.fieldValue(row, config.FieldLink); ok {
		g.Add(rdf.Triple{S: article, P: b.props[propURL], O: rdf.IRI{Value: strings.TrimSpace(link)}})
	}
}

// addAuthors mints one author subject per ID token and relates it to the
// article. Abbreviations align positionally with the ID column, so the raw
// split is kept unfiltered; blank ID tokens are dropped after alignment.
func (b *Builder) addAuthors(g *rdf.Graph, article rdf.IRI, row source.Row) {
	idsValue, ok := b.fieldValue(row, config.FieldAuthorIDs)
	if !ok {
		return
	}

	var abbrevs []string
	if abbrevValue, ok := b.fieldValue(row, config.FieldAuthorAbbreviations); ok {
		abbrevs = strings.Split(abbrevValue, fieldDelimiter)
	}
	fullNames := map[string]string{}
	if namesValue, ok := b.fieldValue(row, config.FieldAuthorFullNames); ok {
		fullNames = parseFullNames(namesValue)
	}

	for i, rawID := range strings.Split(idsValue, fieldDelimiter) {
		aid := strings.TrimSpace(rawID)
		if aid == "" {
			continue
		}
		author := b.entity(vocabulary.Slug(aid))

		b.assertTypes(g, author, b.model.ClassesFor(config.CategoryAuthor))
		g.Add(rdf.Triple{S: author, P: b.props[propIdentifier], O: rdf.String(aid)})

		if i < len(abbrevs) {
			if abbrev := strings.TrimSpace(abbrevs[i]); abbrev != "" {
				g.Add(rdf.Triple{S: author, P: b.props[propLabel], O: rdf.String(abbrev)})
			}
		}
		if fullName, ok := fullNames[aid]; ok {
			g.Add(rdf.Triple{S: author, P: b.props[propName], O: rdf.String(fullName)})
			if family, given, found := strings.Cut(fullName, ","); found {
				g.Add(rdf.Triple{S: author, P: b.props[propFamilyName], O: rdf.String(strings.TrimSpace(family))})
				g.Add(rdf.Triple{S: author, P: b.props[propGivenName], O: rdf.String(strings.TrimSpace(given))})
			}
		}

		g.Add(rdf.Triple{S: article, P: b.props[propAuthor], O: author})
	}
}

// addVenue mints the publication venue subject, typed by the detected
// publication kind plus any configured custom publication type.
func (b *Builder) addVenue(g *rdf.Graph, article rdf.IRI, row source.Row) {
	value, ok := b.fieldValue(row, config.FieldSourceTitle)
	if !ok {
		return
	}
	title := strings.TrimSpace(value)
	venue := b.entity(vocabulary.Slug(title))
	if venue.Value == "" {
		return
	}

	kind := DetectPublicationKind(title)
	if ref, ok := venueClassRefs[kind]; ok {
		g.Add(rdf.Triple{S: venue, P: rdf.IRI{Value: vocabulary.RDFType}, O: b.props[ref]})
	} else if classes := b.model.ClassesFor(config.CategoryArticle); len(classes) > 0 {
		// No pattern matched: fall back to the primary category's first class.
		g.Add(rdf.Triple{S: venue, P: rdf.IRI{Value: vocabulary.RDFType}, O: classes[0]})
	}
	if custom, ok := b.model.PublicationType(string(kind)); ok {
		g.Add(rdf.Triple{S: venue, P: rdf.IRI{Value: vocabulary.RDFType}, O: custom})
	}

	g.Add(rdf.Triple{S: venue, P: b.props[propName], O: rdf.String(title)})
	g.Add(rdf.Triple{S: article, P: b.props[propIsPartOf], O: venue})
}

// addFunding relates the article to each normalized funding organization.
// Type and name are asserted once per run for each distinct organization.
func (b *Builder) addFunding(g *rdf.Graph, article rdf.IRI, row source.Row, orgSeen map[string]bool) {
	value, ok := b.fieldValue(row, config.FieldFundingDetails)
	if !ok {
		return
	}
	for _, token := range splitDelimited(value) {
		name := normalizeOrganization(token)
		if name == "" {
			continue
		}
		slug := vocabulary.Slug(name)
		if slug == "" {
			continue
		}
		org := b.entity(slug)
		if !orgSeen[slug] {
			orgSeen[slug] = true
			b.assertTypes(g, org, b.model.ClassesFor(config.CategoryFundingOrganization))
			g.Add(rdf.Triple{S: org, P: b.props[propName], O: rdf.String(name)})
		}
		g.Add(rdf.Triple{S: article, P: b.props[propFunding], O: org})
	}
}

// addKeywords harvests delimited keywords from every configured keyword
// column. Each distinct keyword is typed and labeled once per run; the
// first spelling encountered wins the label.
func (b *Builder) addKeywords(g *rdf.Graph, article rdf.IRI, row source.Row, keywordSeen map[string]bool) {
	for _, column := range b.model.KeywordColumns() {
		value := row.Get(column)
		if !validLiteral(value) {
			continue
		}
		for _, keyword := range splitDelimited(value) {
			slug := vocabulary.Slug(keyword)
			if slug == "" {
				continue
			}
			concept := b.entity(slug)
			if !keywordSeen[slug] {
				keywordSeen[slug] = true
				b.assertTypes(g, concept, b.model.ClassesFor(config.CategoryKeyword))
				g.Add(rdf.Triple{S: concept, P: b.props[propPrefLabel], O: rdf.LangLiteral(keyword, "en")})
			}
			g.Add(rdf.Triple{S: article, P: b.props[propSubject], O: concept})
		}
	}
}

// addCitationObservation mints a dated observation of the citation count.
// A non-integer count is kept as a plain string with a coercion warning.
func (b *Builder) addCitationObservation(g *rdf.Graph, report *Report, article rdf.IRI, eid string, row source.Row) {
	value, ok := b.fieldValue(row, config.FieldCitedBy)
	if !ok {
		return
	}
	date := b.model.InspectionDate()
	obs := b.entity(vocabulary.Slug(fmt.Sprintf("%s-citations-%s", eid, date)))

	b.assertTypes(g, obs, b.model.ClassesFor(config.CategoryCitationObservation))

	count := strings.TrimSpace(value)
	if n, err := strconv.Atoi(count); err == nil {
		g.Add(rdf.Triple{S: obs, P: b.props[propValue], O: rdf.TypedLiteral(strconv.Itoa(n), vocabulary.XSDInteger)})
	} else {
		report.coerce(row.Number, config.FieldCitedBy, fmt.Sprintf("%q is not an integer citation count, kept as plain string", value))
		g.Add(rdf.Triple{S: obs, P: b.props[propValue], O: rdf.String(count)})
	}
	g.Add(rdf.Triple{S: obs, P: b.props[propObservationDate], O: rdf.TypedLiteral(date, vocabulary.XSDDate)})

	citationRel := rdf.IRI{Value: vocabulary.EntityIRI(b.model.BaseURI(), "citationCount")}
	g.Add(rdf.Triple{S: article, P: citationRel, O: obs})
}
