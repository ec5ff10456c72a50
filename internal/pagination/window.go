package pagination

import "strconv"

// Kind identifies what a Token represents in the rendered control.
type Kind int

const (
	// KindPage is a numbered page.
	KindPage Kind = iota
	// KindLeftEllipsis marks hidden pages between page 1 and the window.
	KindLeftEllipsis
	// KindRightEllipsis marks hidden pages between the window and the last page.
	KindRightEllipsis
)

// Neighbor count bounds.
const (
	MinNeighbors = 0
	MaxNeighbors = 2
)

// terminalSlots is the current page plus the first and last page.
const terminalSlots = 3

// ellipsisSlots reserves room for both ellipsis markers.
const ellipsisSlots = 2

// EllipsisContent is the visible text of an ellipsis marker.
const EllipsisContent = "..."

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindLeftEllipsis:
		return "left_ellipsis"
	case KindRightEllipsis:
		return "right_ellipsis"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a single element of the rendered control.
// Page is set only for KindPage tokens.
type Token struct {
	Kind Kind `json:"kind"           yaml:"kind"`
	Page int  `json:"page,omitempty" yaml:"page,omitempty"`
}

// PageToken returns a KindPage token for page n.
func PageToken(n int) Token {
	return Token{Kind: KindPage, Page: n}
}

// LeftEllipsis returns a left ellipsis token.
func LeftEllipsis() Token {
	return Token{Kind: KindLeftEllipsis}
}

// RightEllipsis returns a right ellipsis token.
func RightEllipsis() Token {
	return Token{Kind: KindRightEllipsis}
}

// IsEllipsis reports whether the token is either ellipsis marker.
func (t Token) IsEllipsis() bool {
	return t.Kind == KindLeftEllipsis || t.Kind == KindRightEllipsis
}

// String returns the visible content of the token.
func (t Token) String() string {
	if t.IsEllipsis() {
		return EllipsisContent
	}
	return strconv.Itoa(t.Page)
}

// ClampNeighbors limits n to [MinNeighbors, MaxNeighbors].
func ClampNeighbors(n int) int {
	return max(MinNeighbors, min(n, MaxNeighbors))
}

// ClampPage limits page to [1, totalPages]. It returns 1 when there are no pages.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	return max(1, min(page, totalPages))
}

// Compute returns the tokens to render for the given position.
//
// The first and last pages are always present, the current page is surrounded
// by up to neighbors pages on each side, and hidden runs of pages are replaced
// by an ellipsis marker. When only one side is hidden the window is widened on
// the other side so the number of visible tokens stays the same as the user
// moves. Out-of-range arguments are clamped; totalPages <= 0 yields nil.
func Compute(current, totalPages, neighbors int) []Token {
	if totalPages <= 0 {
		return nil
	}

	neighbors = ClampNeighbors(neighbors)
	current = ClampPage(current, totalPages)

	windowSize := neighbors*2 + terminalSlots
	blockSize := windowSize + ellipsisSlots

	if totalPages <= blockSize {
		return pageRange(nil, 1, totalPages)
	}

	startPage := max(2, current-neighbors)
	endPage := min(totalPages-1, current+neighbors)

	hasLeftSpill := startPage > 2
	hasRightSpill := totalPages-endPage > 1

	spillOffset := windowSize - (endPage - startPage + 1 + 1)

	tokens := make([]Token, 0, blockSize)
	tokens = append(tokens, PageToken(1))

	switch {
	case hasLeftSpill && !hasRightSpill:
		tokens = append(tokens, LeftEllipsis())
		tokens = pageRange(tokens, startPage-spillOffset, startPage-1)
		tokens = pageRange(tokens, startPage, endPage)
	case !hasLeftSpill && hasRightSpill:
		tokens = pageRange(tokens, startPage, endPage)
		tokens = pageRange(tokens, endPage+1, endPage+spillOffset)
		tokens = append(tokens, RightEllipsis())
	case hasLeftSpill && hasRightSpill:
		tokens = append(tokens, LeftEllipsis())
		tokens = pageRange(tokens, startPage, endPage)
		tokens = append(tokens, RightEllipsis())
	default:
		tokens = pageRange(tokens, startPage, endPage)
	}

	return append(tokens, PageToken(totalPages))
}

// pageRange appends page tokens for [from, to] to dst.
func pageRange(dst []Token, from, to int) []Token {
	for p := from; p <= to; p++ {
		dst = append(dst, PageToken(p))
	}
	return dst
}
