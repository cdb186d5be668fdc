package postgres

const (
	upsertUserQuery = `INSERT INTO users (uid, email, updated_at)
		VALUES (:uid, :email, :updated_at)
		ON CONFLICT (uid) DO UPDATE SET email = EXCLUDED.email, updated_at = EXCLUDED.updated_at`

	insertUploadRecordQuery = `INSERT INTO upload_records (email, cid, created_at) VALUES ($1, $2, $3)`

	// strpos keeps the query literal; LIKE would treat % and _ as wildcards.
	searchUploadRecordsQuery = `SELECT email, cid, created_at FROM upload_records
		 WHERE strpos(lower(email), lower($1)) > 0
		 ORDER BY created_at ASC, id ASC`
)
