package pagination

import (
	"math"
	"net/url"
	"strconv"
)

// PageParam and SizeParam are the query parameters that select a page.
const (
	PageParam = "page"
	SizeParam = "page_size"
)

// Page is a 1-based page number with its size.
type Page struct {
	Number int
	Size   int
}

// NewPage normalises the requested page. A missing size falls back to
// defaultSize and sizes above maxSize are capped.
func NewPage(number, size, defaultSize, maxSize int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Limit() int  { return p.Size }
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// Addressable reports whether the page's offset fits in an int. Pages that
// fail it lie past any table that could be counted.
func (p Page) Addressable() bool {
	return p.Size > 0 && p.Number > 0 && p.Number-1 <= math.MaxInt/p.Size
}

// LastPage is the number of the last non-empty page for total items; at least 1.
func (p Page) LastPage(total int64) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// Links builds absolute next/previous links from the current request URL.
// Other query parameters are kept. The link to the first page drops the
// page parameter.
func (p Page) Links(current *url.URL, total int64) (next, previous *string) {
	if p.Number < p.LastPage(total) {
		next = pageURL(current, p.Number+1)
	}
	if p.Number > 1 {
		previous = pageURL(current, p.Number-1)
	}
	return next, previous
}

func pageURL(current *url.URL, number int) *string {
	u := *current
	q := u.Query()
	if number <= 1 {
		q.Del(PageParam)
	} else {
		q.Set(PageParam, strconv.Itoa(number))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
