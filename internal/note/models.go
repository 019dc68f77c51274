package note

// Note is a single note owned by the notes store. Timestamp is the ISO-8601
// creation time and never changes after Create.
type Note struct {
	ID        string `json:"id" bson:"-"`
	Title     string `json:"title" bson:"title"`
	Content   string `json:"content" bson:"content"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}
