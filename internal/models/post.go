package models

// Reply is a single response embedded in a Post. Replies have no independent
// existence: they live and die with their parent post's replies array.
type Reply struct {
	ID        int64  `bson:"id" json:"id"`
	Author    string `bson:"author" json:"author"`
	Content   string `bson:"content" json:"content"`
	Timestamp string `bson:"timestamp" json:"timestamp"`
}

// Post is a discussion thread with an embedded, ordered list of replies.
// IDs are derived from the creation time in milliseconds.
type Post struct {
	ID        int64   `bson:"id" json:"id"`
	Author    string  `bson:"author" json:"author"`
	Content   string  `bson:"content" json:"content"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
	Timestamp string  `bson:"timestamp" json:"timestamp"`
	Replies   []Reply `bson:"replies" json:"replies"`
}
