package funding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyExtractorExtract(t *testing.T) {
	extractor := NewCompanyExtractor(DefaultVocabulary())

	tests := []struct {
		title string
		want  string
	}{
		{"Acme Robotics raises $5M Seed round", "Acme Robotics"},
		{"Nimbus Health secures €3.2 million Series A", "Nimbus Health"},
		{"Fiona & Co: Pre-Seed funding of £750,000", "Fiona & Co"},
		{"Raises Series A for Kite Labs", "Kite Labs"},
		{"TechCrunch: Acme raises", ""},
		{"EU Startups - Orbit raises seed", ""},
		{"Foo | Bar: baz", "Foo"},
		{"Bar: Foo | baz", "Bar"},
		{"TechCrunch – Acme: raises $5M", "Acme"},
		{"ÉLabs raises seed", ""},
		{"X raises money", ""},
		{"why founders raise money", ""},
		{"Meta-Labs AI2 closes round", "Meta-Labs AI2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.title))
		})
	}
}

func TestCompanyExtractorSourceNames(t *testing.T) {
	extractor := NewCompanyExtractor(DefaultVocabulary().WithSourceNames("Sifted"))

	assert.Equal(t, "", extractor.Extract("Sifted: weekly funding roundup"))
	assert.Equal(t, "Orbit", extractor.Extract("Orbit raises seed, says Sifted"))
}

func TestLeadingSegment(t *testing.T) {
	assert.Equal(t, "Acme", leadingSegment("Acme – raises"))
	assert.Equal(t, "Acme", leadingSegment("Acme—raises"))
	assert.Equal(t, "Foo | Bar", leadingSegment("Foo | Bar: baz"))
	assert.Equal(t, "TechCrunch – Acme", leadingSegment("TechCrunch – Acme: raises $5M"))
	assert.Equal(t, "Orbit | Nimbus", leadingSegment("Orbit | Nimbus - Kite"))
	assert.Equal(t, "no separator", leadingSegment("no separator"))
}
