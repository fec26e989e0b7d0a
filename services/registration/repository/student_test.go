package repository

import (
	"context"
	"errors"
	"testing"

	"registration/domain"
)

func annLee() domain.Student {
	return domain.Student{
		FirstName: "Ann",
		LastName:  "Lee",
		Phone:     "9123456780",
		Birthdate: "2000-01-01",
		Email:     "ann@example.com",
	}
}

func bobRay() domain.Student {
	return domain.Student{
		FirstName: "Bob",
		LastName:  "Ray",
		Phone:     "8123456780",
		Birthdate: "1999-05-05",
		Email:     "bob@example.com",
	}
}

func TestCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	student := annLee()
	if err := repo.CreateStudent(ctx, &student); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if student.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	students, err := repo.GetAllStudent(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(*students) != 1 {
		t.Fatalf("expected exactly one student, got %d", len(*students))
	}
	got := (*students)[0]
	if got.FirstName != "Ann" || got.Phone != "9123456780" || got.Email != "ann@example.com" {
		t.Fatalf("listed record does not match submitted fields: %+v", got)
	}
}

func TestCreateDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	first := annLee()
	if err := repo.CreateStudent(ctx, &first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second := bobRay()
	second.Phone = first.Phone
	if err := repo.CreateStudent(ctx, &second); !errors.Is(err, domain.ErrDuplicatePhone) {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	first := annLee()
	if err := repo.CreateStudent(ctx, &first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second := bobRay()
	second.Email = first.Email
	if err := repo.CreateStudent(ctx, &second); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdateStudent(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	ann := annLee()
	bob := bobRay()
	if err := repo.CreateStudent(ctx, &ann); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.CreateStudent(ctx, &bob); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Keeping your own phone is not a conflict.
	ann.LastName = "Lee-Park"
	if err := repo.UpdateStudent(ctx, &ann); err != nil {
		t.Fatalf("update with own phone failed: %v", err)
	}

	// Taking another student's phone is.
	ann.Phone = bob.Phone
	if err := repo.UpdateStudent(ctx, &ann); !errors.Is(err, domain.ErrDuplicatePhone) {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}

	missing := annLee()
	missing.ID = 9999
	missing.Phone = "7000000000"
	missing.Email = "missing@example.com"
	if err := repo.UpdateStudent(ctx, &missing); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)
	enrollments := NewEnrollmentRepository(db)
	ctx := context.Background()

	ann := annLee()
	if err := repo.CreateStudent(ctx, &ann); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := enrollments.AddSubjects(ctx, ann.ID, []int{1, 2}); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	if err := repo.DeleteStudent(ctx, ann.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var count int64
	if err := db.Model(&domain.StudentSubject{}).Where("student_id = ?", ann.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected enrollments to be removed, found %d", count)
	}

	if err := repo.DeleteStudent(ctx, ann.ID); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound on second delete, got %v", err)
	}
}

func TestGetStudentByIDDetail(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)
	enrollments := NewEnrollmentRepository(db)
	ctx := context.Background()

	if _, err := repo.GetStudentByID(ctx, 42); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}

	ann := annLee()
	if err := repo.CreateStudent(ctx, &ann); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Mathematics (1) and Chemistry (3) from the seeded starter set.
	if _, err := enrollments.AddSubjects(ctx, ann.ID, []int{1, 3}); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	detail, err := repo.GetStudentByID(ctx, ann.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Email != ann.Email {
		t.Fatalf("expected student fields, got %+v", detail.Student)
	}

	enrolledNames := subjectNames(detail.EnrolledSubjects)
	if !equalStrings(enrolledNames, []string{"Chemistry", "Mathematics"}) {
		t.Fatalf("expected alphabetical enrolled subjects, got %v", enrolledNames)
	}

	availableNames := subjectNames(detail.AvailableSubjects)
	if !equalStrings(availableNames, []string{"Biology", "History", "Physics"}) {
		t.Fatalf("expected alphabetical complement set, got %v", availableNames)
	}
}

func subjectNames(subjects []domain.Subject) []string {
	names := make([]string, len(subjects))
	for i, s := range subjects {
		names[i] = s.Name
	}
	return names
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
