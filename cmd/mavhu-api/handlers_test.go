package main

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateField(t *testing.T) {
	err := errors.New(`write exception: write errors: [E11000 duplicate key error collection: mavhu.companies index: uniq_registration_number dup key: { registration_number: "REG-1" }]`)
	assert.Equal(t, "registration_number", duplicateField(err))

	err = errors.New(`E11000 duplicate key error ... index: uniq_email dup key`)
	assert.Equal(t, "email", duplicateField(err))

	err = errors.New(`E11000 duplicate key error ... index: something_else`)
	assert.Equal(t, "", duplicateField(err))
}

func TestParsePageLimit(t *testing.T) {
	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/companies/admin", 1, 20},
		{"/companies/admin?page=2&limit=10", 2, 10},
		{"/companies/admin?page=0&limit=-5", 1, 20},
		{"/companies/admin?page=3&limit=500", 3, 100},
		{"/companies/admin?page=abc&limit=xyz", 1, 20},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		page, limit := parsePageLimit(r)
		assert.Equal(t, tc.wantPage, page, tc.url)
		assert.Equal(t, tc.wantLimit, limit, tc.url)
	}
}

func TestRawJSON(t *testing.T) {
	m, err := rawJSON([]byte(`{"reporting_period":{"year":2025}}`))
	require.NoError(t, err)
	assert.Contains(t, m, "reporting_period")

	_, err = rawJSON([]byte(`[1,2,3]`))
	assert.Error(t, err)
}
