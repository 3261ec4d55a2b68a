package domain

// Output field names.
const (
	FieldDocNo    = "DOCNO"
	FieldTitle    = "title"
	FieldText     = "text"
	FieldLinkText = "linkText"
)

// HTMLFields holds raw text extracted from one HTML page.
// It is consumed immediately by the text normaliser.
type HTMLFields struct {
	Title    string
	BodyText string
	LinkText string

	// AllText is title and body together. It is extracted but never emitted.
	AllText string

	// Links are hyperlink targets resolved against the page base URL.
	Links []string
}

// Field is one named value of an IndexEntry.
type Field struct {
	Name  string
	Value string
}

// IndexEntry is one emitted document.
// Values are filtered and stemmed text.
type IndexEntry struct {
	DocNo    string
	Title    string
	Text     string
	LinkText string
}

// Fields returns the entry's fields in output order.
func (e IndexEntry) Fields() []Field {
	return []Field{
		{Name: FieldDocNo, Value: e.DocNo},
		{Name: FieldTitle, Value: e.Title},
		{Name: FieldText, Value: e.Text},
		{Name: FieldLinkText, Value: e.LinkText},
	}
}
