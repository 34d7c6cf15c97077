package models

// Patch is a version announcement shown on the patch notes page.
type Patch struct {
	ID      int64  `bson:"id" json:"id"`
	Version string `bson:"version" json:"version"`
	Date    string `bson:"date" json:"date"`
	Text    string `bson:"text" json:"text"`
}

// PatchUpdate carries the fields of a partial patch update. Empty fields are
// left untouched in the stored document, not cleared.
type PatchUpdate struct {
	Version string
	Date    string
	Text    string
}
