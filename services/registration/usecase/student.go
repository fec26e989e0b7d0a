package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/asaskevich/govalidator"

	"registration/domain"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s-]{2,50}$`)
	phoneRe = regexp.MustCompile(`^[5-9][0-9]{9}$`)
)

type studentUC struct {
	studentRepo domain.StudentRepo
	TimeOut     time.Duration
}

func NewStudentUseCase(repo domain.StudentRepo, timeOut time.Duration) domain.StudentUseCase {
	return &studentUC{
		studentRepo: repo,
		TimeOut:     timeOut,
	}
}

// validateStudent enforces the per-field rules before anything reaches the
// store: names 2-50 characters of letters, whitespace and hyphens, a
// 10-digit phone starting 5-9, a real calendar date and a syntactically
// valid email. Every offending field is reported, not just the first.
func validateStudent(student *domain.Student) error {
	fields := map[string]string{}

	if !nameRe.MatchString(student.FirstName) {
		fields["first_name"] = "must be 2-50 letters, spaces or hyphens"
	}
	if !nameRe.MatchString(student.LastName) {
		fields["last_name"] = "must be 2-50 letters, spaces or hyphens"
	}
	if !phoneRe.MatchString(student.Phone) {
		fields["phone"] = "must be 10 digits starting with 5-9"
	}
	if _, err := time.Parse("2006-01-02", student.Birthdate); err != nil {
		fields["birthdate"] = "must be a valid date in YYYY-MM-DD format"
	}
	if !govalidator.IsEmail(student.Email) {
		fields["email"] = "must be a valid email address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (sUC *studentUC) CreateStudentUC(ctx context.Context, student *domain.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.CreateStudent(ctx, student)
}

func (sUC *studentUC) GetAllStudentUC(ctx context.Context) (*[]domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.GetAllStudent(ctx)
}

func (sUC *studentUC) GetStudentByIDUC(ctx context.Context, id int) (*domain.StudentDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.GetStudentByID(ctx, id)
}

func (sUC *studentUC) UpdateStudentUC(ctx context.Context, student *domain.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.UpdateStudent(ctx, student)
}

func (sUC *studentUC) DeleteStudentUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.DeleteStudent(ctx, id)
}
