package utils

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit inside an int32.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// ParsePage reads page/limit query values. Missing, non-numeric or
// non-positive values fall back to the defaults; page and limit are capped.
func ParsePage(page, limit string) Page {
	p := Page{Number: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && n > 0 {
		p.Number = min(n, MaxPage)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	return p
}

func (p Page) Skip() int64 { return int64(p.Number-1) * int64(p.Limit) }

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Window returns the [start,end) bounds of page p over n items.
func (p Page) Window(n int) (int, int) {
	start := int(max(p.Skip(), 0))
	if start > n {
		start = n
	}
	return start, min(start+p.Limit, n)
}
