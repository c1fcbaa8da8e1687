package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name, page, limit string
		want              Page
	}{
		{"defaults", "", "", Page{1, 10}},
		{"explicit", "3", "25", Page{3, 25}},
		{"garbage", "abc", "x", Page{1, 10}},
		{"non positive", "0", "-4", Page{1, 10}},
		{"capped", "2", "5000", Page{2, MaxLimit}},
		{"huge page", "9223372036854775807", "100", Page{MaxPage, MaxLimit}},
		{"overflowing page", "99999999999999999999", "10", Page{1, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.page, tt.limit))
		})
	}
}

func TestSkipAndTotalPages(t *testing.T) {
	assert.EqualValues(t, 20, Page{3, 10}.Skip())
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
}

func TestWindow(t *testing.T) {
	start, end := Page{3, 10}.Window(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = Page{9, 10}.Window(25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestSkipNeverNegative(t *testing.T) {
	p := ParsePage("9223372036854775807", "100")
	assert.Positive(t, p.Skip())

	start, end := p.Window(25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)

	start, end = Page{Number: 0, Limit: 10}.Window(25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
}
