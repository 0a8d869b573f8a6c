package query

// Page holds pagination parameters. This library models the parameters
// only; executing pagination is the caller's concern.
type Page struct {
	// Number is the 1-based page number. NewPage normalizes 0 to 1.
	Number uint64

	// Size is the requested page size; 0 means unspecified.
	Size uint64
}

// NewPage builds a Page, normalizing a zero number to 1.
func NewPage(number, size uint64) *Page {
	if number == 0 {
		number = 1
	}
	return &Page{Number: number, Size: size}
}

// isDefault reports whether the page carries no information worth
// serializing: number 1 and no size.
func (p *Page) isDefault() bool {
	return p == nil || (p.Number == 1 && p.Size == 0)
}
