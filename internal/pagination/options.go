package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Option defaults.
const (
	DefaultTotalRecords  = 0
	DefaultPageLimit     = 10
	DefaultPageNeighbors = 1
)

// Common validation errors.
var (
	ErrMissingCallback     = errors.New("page change callback is required")
	ErrInvalidTotalRecords = errors.New("total records cannot be negative")
	ErrInvalidPageLimit    = errors.New("page limit must be positive")
)

// Flag names registered by BindFlags.
const (
	FlagTotalRecords  = "total-records"
	FlagPageLimit     = "page-limit"
	FlagPageNeighbors = "neighbors"
)

// Options configures a Controller.
type Options struct {
	// TotalRecords is the number of records being paged over.
	TotalRecords int

	// PageLimit is the number of records per page.
	PageLimit int

	// PageNeighbors is the number of pages shown on each side of the current
	// page. Values outside [0, 2] are clamped.
	PageNeighbors int
}

// DefaultOptions returns Options populated with the default values.
func DefaultOptions() Options {
	return Options{
		TotalRecords:  DefaultTotalRecords,
		PageLimit:     DefaultPageLimit,
		PageNeighbors: DefaultPageNeighbors,
	}
}

// Validate checks the options for values that cannot be clamped.
func (o Options) Validate() error {
	if o.TotalRecords < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalRecords, o.TotalRecords)
	}
	if o.PageLimit < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageLimit, o.PageLimit)
	}
	return nil
}

// Normalize fills an unset page limit with the default and clamps the
// neighbor count.
func (o Options) Normalize() Options {
	if o.PageLimit == 0 {
		o.PageLimit = DefaultPageLimit
	}
	o.PageNeighbors = ClampNeighbors(o.PageNeighbors)
	return o
}

// TotalPages returns the number of pages described by the options.
func (o Options) TotalPages() int {
	return TotalPages(o.TotalRecords, o.PageLimit)
}

// BindFlags registers the pagination flags on fs, storing values in opts.
// The current values of opts are used as flag defaults.
func BindFlags(fs *pflag.FlagSet, opts *Options) {
	fs.IntVar(&opts.TotalRecords, FlagTotalRecords, opts.TotalRecords, "total number of records")
	fs.IntVar(&opts.PageLimit, FlagPageLimit, opts.PageLimit, "records per page")
	fs.IntVar(&opts.PageNeighbors, FlagPageNeighbors, opts.PageNeighbors,
		"pages shown on each side of the current page (0-2)")
}
