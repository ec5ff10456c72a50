package pagination

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Item labels.
const (
	LabelPrevious = "Previous page"
	LabelNext     = "Next page"
)

// ChangeFunc is called after every navigation with the new position.
type ChangeFunc func(info PageInfo)

// Action is the navigation performed when an item is activated.
type Action int

const (
	// ActionGoToPage jumps to the item's page.
	ActionGoToPage Action = iota
	// ActionMoveLeft moves one page back.
	ActionMoveLeft
	// ActionMoveRight moves one page forward.
	ActionMoveRight
)

// Item is a renderable, activatable element of the control.
type Item struct {
	Token   Token
	Label   string
	Content string
	// Current marks the item for the page being shown. It carries no
	// behavior; renderers use it for highlighting.
	Current bool
	Action  Action
}

// Controller owns the current page of a pagination control and translates
// item activations into page change notifications.
type Controller struct {
	opts        Options
	totalPages  int
	currentPage int
	onChange    ChangeFunc
	logger      zerolog.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for navigation debug events.
func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithInitialPage sets the starting page. It is clamped to the available pages
// and does not trigger the change callback.
func WithInitialPage(page int) ControllerOption {
	return func(c *Controller) {
		c.currentPage = page
	}
}

// New creates a Controller starting on page 1.
// Zero-valued options take their defaults. Returns ErrMissingCallback when
// onChange is nil.
func New(opts Options, onChange ChangeFunc, copts ...ControllerOption) (*Controller, error) {
	if onChange == nil {
		return nil, ErrMissingCallback
	}

	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pagination options: %w", err)
	}

	c := &Controller{
		opts:        opts,
		currentPage: 1,
		onChange:    onChange,
		logger:      zerolog.Nop(),
	}
	for _, opt := range copts {
		opt(c)
	}

	c.totalPages = opts.TotalPages()
	c.currentPage = ClampPage(c.currentPage, c.totalPages)
	return c, nil
}

// CurrentPage returns the page being shown.
func (c *Controller) CurrentPage() int {
	return c.currentPage
}

// TotalPages returns the number of pages.
func (c *Controller) TotalPages() int {
	return c.totalPages
}

// Options returns the normalized options in effect.
func (c *Controller) Options() Options {
	return c.opts
}

// Info returns the current position.
func (c *Controller) Info() PageInfo {
	return PageInfo{
		CurrentPage:  c.currentPage,
		TotalPages:   c.totalPages,
		PageLimit:    c.opts.PageLimit,
		TotalRecords: c.opts.TotalRecords,
	}
}

// Bounds returns the half-open record range of the current page.
//
//nolint:nonamedreturns // Named returns document the range ends.
func (c *Controller) Bounds() (start, end int) {
	return Bounds(c.currentPage, c.opts.PageLimit, c.opts.TotalRecords)
}

// GoToPage moves to target, clamped to [1, TotalPages], and notifies the
// change callback with the new position. With no pages it does nothing.
func (c *Controller) GoToPage(target int) {
	if c.totalPages == 0 {
		c.logger.Debug().Int("target", target).Msg("navigation ignored: no pages")
		return
	}

	previous := c.currentPage
	c.currentPage = ClampPage(target, c.totalPages)

	c.logger.Debug().
		Int("target", target).
		Int("from", previous).
		Int("to", c.currentPage).
		Int("total_pages", c.totalPages).
		Msg("page changed")

	c.onChange(c.Info())
}

// MoveLeft moves one page back.
func (c *Controller) MoveLeft() {
	c.GoToPage(c.currentPage - 1)
}

// MoveRight moves one page forward.
func (c *Controller) MoveRight() {
	c.GoToPage(c.currentPage + 1)
}

// SetTotalRecords updates the record count, recomputes the page count and
// re-clamps the current page. The callback is not invoked.
func (c *Controller) SetTotalRecords(totalRecords int) error {
	return c.reconfigure(Options{
		TotalRecords:  totalRecords,
		PageLimit:     c.opts.PageLimit,
		PageNeighbors: c.opts.PageNeighbors,
	})
}

// SetPageLimit updates the page size, recomputes the page count and
// re-clamps the current page. The callback is not invoked.
func (c *Controller) SetPageLimit(pageLimit int) error {
	return c.reconfigure(Options{
		TotalRecords:  c.opts.TotalRecords,
		PageLimit:     pageLimit,
		PageNeighbors: c.opts.PageNeighbors,
	})
}

func (c *Controller) reconfigure(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	c.opts = opts
	c.totalPages = opts.TotalPages()
	c.currentPage = ClampPage(c.currentPage, c.totalPages)
	return nil
}

// Tokens returns the page window for the current position.
func (c *Controller) Tokens() []Token {
	return Compute(c.currentPage, c.totalPages, c.opts.PageNeighbors)
}

// Items returns the renderable items for the current position.
// With no pages the result is empty.
func (c *Controller) Items() []Item {
	tokens := c.Tokens()
	items := make([]Item, 0, len(tokens))
	for _, tok := range tokens {
		items = append(items, c.itemFor(tok))
	}
	return items
}

func (c *Controller) itemFor(tok Token) Item {
	switch tok.Kind {
	case KindLeftEllipsis:
		return Item{Token: tok, Label: LabelPrevious, Content: EllipsisContent, Action: ActionMoveLeft}
	case KindRightEllipsis:
		return Item{Token: tok, Label: LabelNext, Content: EllipsisContent, Action: ActionMoveRight}
	default:
		return Item{
			Token:   tok,
			Label:   PageLabel(tok.Page),
			Content: tok.String(),
			Current: tok.Page == c.currentPage,
			Action:  ActionGoToPage,
		}
	}
}

// Activate performs the item's navigation action.
func (c *Controller) Activate(item Item) {
	switch item.Action {
	case ActionMoveLeft:
		c.MoveLeft()
	case ActionMoveRight:
		c.MoveRight()
	default:
		c.GoToPage(item.Token.Page)
	}
}

// PageLabel returns the accessible label for page n.
func PageLabel(n int) string {
	return fmt.Sprintf("Go to page %d", n)
}
