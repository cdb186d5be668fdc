package mongo_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"cidgate/internal/repository/mongo"
)

func TestEmailFilter_EscapesMetacharacters(t *testing.T) {
	f := mongo.EmailFilter("a.b+c@x.io")

	assert.Equal(t, "i", f.Options)
	re := regexp.MustCompile("(?i)" + f.Pattern)
	assert.True(t, re.MatchString("A.B+C@X.IO"))
	assert.False(t, re.MatchString("aXb+c@x.io"))
	assert.False(t, re.MatchString("aab+c@x.io"))
}

func TestEmailFilter_Empty(t *testing.T) {
	f := mongo.EmailFilter("")
	re := regexp.MustCompile("(?i)" + f.Pattern)
	assert.True(t, re.MatchString("anyone@example.com"))
}
