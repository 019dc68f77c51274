package student

// Course is one graded course taken by a student.
type Course struct {
	CourseName string `json:"course_name" bson:"course_name" binding:"required"`
	Grade      string `json:"grade" bson:"grade" binding:"required"`
}

// Student is keyed by the caller-supplied StudentID. The store does not
// enforce its uniqueness.
type Student struct {
	StudentID string   `json:"student_id" bson:"student_id" binding:"required"`
	FirstName string   `json:"first_name" bson:"first_name" binding:"required"`
	LastName  string   `json:"last_name" bson:"last_name" binding:"required"`
	Age       *int     `json:"age" bson:"age" binding:"required,min=0"`
	Courses   []Course `json:"courses" bson:"courses" binding:"required,dive"`
}
