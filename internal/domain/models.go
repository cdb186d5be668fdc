package domain

import "time"

// Identity is the subject resolved from a verified bearer token.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// User is a registered account, keyed by the provider-issued UID.
type User struct {
	UID       string    `db:"uid" bson:"uid" json:"uid"`
	Email     string    `db:"email" bson:"email" json:"email"`
	UpdatedAt time.Time `db:"updated_at" bson:"updated_at" json:"-"`
}

// UploadRecord links an uploader's email to the CID returned by the object store.
// Several records may share an email; CIDs are not unique.
type UploadRecord struct {
	Email     string    `db:"email" bson:"email" json:"email"`
	CID       string    `db:"cid" bson:"cid" json:"cid"`
	CreatedAt time.Time `db:"created_at" bson:"created_at" json:"-"`
}

// IncomingUpload is a file buffered in memory for the lifetime of one request.
type IncomingUpload struct {
	OriginalName string
	Bytes        []byte
	ContentType  string
}

// Size returns the payload length in bytes.
func (u *IncomingUpload) Size() int64 {
	return int64(len(u.Bytes))
}
