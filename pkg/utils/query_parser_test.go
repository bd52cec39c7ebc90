package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListQuery(t *testing.T) {
	values := url.Values{}
	values.Set("category", "Cardio")
	values.Set("status", "operational")
	values.Set("color", "red")
	values.Set("limit", "10")
	values.Set("offset", "20")

	filter := ParseListQuery(values, []string{"category", "condition", "status"})

	assert.Equal(t, "Cardio", filter.Filter["category"])
	assert.Equal(t, "operational", filter.Filter["status"])
	_, present := filter.Filter["color"]
	assert.False(t, present, "keys outside the allow-list must be ignored")
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 20, filter.Offset)
}

func TestParseListQuery_Defaults(t *testing.T) {
	filter := ParseListQuery(url.Values{}, []string{"category"})

	assert.Empty(t, filter.Filter)
	assert.Equal(t, 0, filter.Limit, "absent limit means unlimited")
	assert.Equal(t, 0, filter.Offset)
}

func TestParseListQuery_IgnoresBadNumbers(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "abc")
	values.Set("offset", "-5")

	filter := ParseListQuery(values, nil)

	assert.Equal(t, 0, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
}
