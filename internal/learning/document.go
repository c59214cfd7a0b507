package learning

// DocumentID uniquely identifies a source document.
type DocumentID string

// DocLocation points into a document, e.g. a character range or paragraph ID.
type DocLocation string

// Document is a piece of source material that knowledge units are
// extracted from. The engine only reads its text; parsing and OCR happen
// upstream.
type Document struct {
	ID       DocumentID
	Text     string
	Metadata map[string]string
}

// Claim is a discrete, verifiable statement extracted from a document.
// Claims are immutable values: created once during knowledge extraction,
// never mutated.
type Claim struct {
	Text        string
	DocID       DocumentID
	DocLocation DocLocation
}
