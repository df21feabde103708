package pagination

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Size: 10}, NewPage(0, 0, 10, 100))
	assert.Equal(t, Page{Number: 3, Size: 100}, NewPage(3, 500, 10, 100))
	assert.Equal(t, Page{Number: 2, Size: 5}, NewPage(2, 5, 10, 100))
}

func TestPageLimitOffset(t *testing.T) {
	p := NewPage(3, 20, 10, 100)
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}

func TestPageAddressable(t *testing.T) {
	assert.True(t, NewPage(1, 10, 10, 100).Addressable())
	assert.True(t, NewPage(math.MaxInt/10+1, 10, 10, 100).Addressable())
	assert.False(t, NewPage(math.MaxInt/10+2, 10, 10, 100).Addressable())
	assert.False(t, NewPage(math.MaxInt, 10, 10, 100).Addressable())
	assert.False(t, Page{Number: 1, Size: 0}.Addressable())
}

func TestLastPage(t *testing.T) {
	p := Page{Number: 1, Size: 10}
	assert.Equal(t, 1, p.LastPage(0))
	assert.Equal(t, 1, p.LastPage(10))
	assert.Equal(t, 2, p.LastPage(11))
}

func TestLinks(t *testing.T) {
	current, err := url.Parse("http://localhost:8080/articles/?page=2&page_size=10")
	require.NoError(t, err)

	next, previous := Page{Number: 2, Size: 10}.Links(current, 35)
	require.NotNil(t, next)
	require.NotNil(t, previous)
	assert.Equal(t, "http://localhost:8080/articles/?page=3&page_size=10", *next)
	assert.Equal(t, "http://localhost:8080/articles/?page_size=10", *previous)

	next, previous = Page{Number: 4, Size: 10}.Links(current, 35)
	assert.Nil(t, next)
	require.NotNil(t, previous)
	assert.Equal(t, "http://localhost:8080/articles/?page=3&page_size=10", *previous)

	next, previous = Page{Number: 1, Size: 10}.Links(current, 5)
	assert.Nil(t, next)
	assert.Nil(t, previous)
}
