package funding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevanceFilterIsFundingRelated(t *testing.T) {
	filter := NewRelevanceFilter(DefaultVocabulary().Keywords)

	assert.True(t, filter.IsFundingRelated("Acme Robotics raises $5M Seed round"))
	assert.True(t, filter.IsFundingRelated("NIMBUS SECURES CASH"))
	assert.True(t, filter.IsFundingRelated("Fund BACKED by angels"))
	// substring match, not word match
	assert.True(t, filter.IsFundingRelated("Playground for kids"))

	assert.False(t, filter.IsFundingRelated("Random blog post about markets"))
	assert.False(t, filter.IsFundingRelated(""))
}

func TestRelevanceFilterEmptyKeywords(t *testing.T) {
	filter := NewRelevanceFilter([]string{" ", ""})
	assert.False(t, filter.IsFundingRelated("Acme raises funding"))
}
