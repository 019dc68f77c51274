package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studydesk/go-services/internal/student"
)

func newStudent(id, first string, age int) *student.Student {
	return &student.Student{
		StudentID: id,
		FirstName: first,
		LastName:  "Yılmaz",
		Age:       &age,
		Courses:   []student.Course{{CourseName: "Fizik", Grade: "AA"}},
	}
}

func TestMemoryRepoDuplicatesAndFirstMatch(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, newStudent("42", "Ali", 20)))
	require.NoError(t, r.Create(ctx, newStudent("42", "Ayşe", 21)))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	got, err := r.GetByStudentID(ctx, "42")
	require.NoError(t, err)
	require.Equal(t, "Ali", got.FirstName)

	// delete removes only the first match
	require.NoError(t, r.DeleteByStudentID(ctx, "42"))
	got, err = r.GetByStudentID(ctx, "42")
	require.NoError(t, err)
	require.Equal(t, "Ayşe", got.FirstName)

	require.NoError(t, r.DeleteByStudentID(ctx, "42"))
	require.ErrorIs(t, r.DeleteByStudentID(ctx, "42"), ErrNotFound)
	_, err = r.GetByStudentID(ctx, "42")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, newStudent("1", "Ali", 20)))

	got, err := r.GetByStudentID(ctx, "1")
	require.NoError(t, err)
	*got.Age = 99
	got.Courses[0].Grade = "FF"

	again, err := r.GetByStudentID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 20, *again.Age)
	require.Equal(t, "AA", again.Courses[0].Grade)
}
