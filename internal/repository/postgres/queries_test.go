package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchUploadRecordsQuery_MatchesLiterally(t *testing.T) {
	q := strings.ToLower(searchUploadRecordsQuery)

	assert.Contains(t, q, "strpos(lower(email), lower($1)) > 0")
	assert.NotContains(t, q, " like ")
	assert.NotContains(t, q, "~*")
	assert.NotContains(t, q, "similar to")
	assert.Contains(t, q, "order by created_at asc, id asc")
}

func TestUpsertUserQuery_OverwritesEmailByUID(t *testing.T) {
	assert.Contains(t, upsertUserQuery, "ON CONFLICT (uid) DO UPDATE SET email = EXCLUDED.email")
	assert.Contains(t, upsertUserQuery, ":uid")
	assert.Contains(t, upsertUserQuery, ":email")
}

func TestInsertUploadRecordQuery_InsertOnly(t *testing.T) {
	assert.NotContains(t, strings.ToUpper(insertUploadRecordQuery), "ON CONFLICT")
}
