package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Query
	}{
		{"25", Query{Kind: ByID, ID: 25}},
		{"pikachu", Query{Kind: ByName, Name: "pikachu"}},
		{"-5", Query{Kind: ByName, Name: "-5"}},
		{"0", Query{Kind: ByName, Name: "0"}},
		{"", Query{Kind: ByName, Name: ""}},
		{"007", Query{Kind: ByID, ID: 7}},
		{"+3", Query{Kind: ByID, ID: 3}},
		{"2.5", Query{Kind: ByName, Name: "2.5"}},
		{"1e3", Query{Kind: ByName, Name: "1e3"}},
		{" 25", Query{Kind: ByName, Name: " 25"}},
		{"99999999999999999999", Query{Kind: ByName, Name: "99999999999999999999"}},
		{"mr-mime", Query{Kind: ByName, Name: "mr-mime"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}

func TestQueryString(t *testing.T) {
	assert.Equal(t, "25", Classify("25").String())
	assert.Equal(t, "eevee", Classify("eevee").String())
	assert.Equal(t, "id", ByID.String())
	assert.Equal(t, "name", ByName.String())
}
