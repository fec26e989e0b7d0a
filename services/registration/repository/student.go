package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"registration/domain"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(database *gorm.DB) domain.StudentRepo {
	return &studentRepository{
		db: database,
	}
}

func (sr *studentRepository) CreateStudent(ctx context.Context, student *domain.Student) error {
	err := sr.db.WithContext(ctx).Create(student).Error
	if err != nil {
		if dup := classifyDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("could not insert student: %w", err)
	}
	return nil
}

func (sr *studentRepository) GetAllStudent(ctx context.Context) (*[]domain.Student, error) {
	students := make([]domain.Student, 0)
	err := sr.db.WithContext(ctx).Order("id").Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("could not get all students: %w", err)
	}
	return &students, nil
}

func (sr *studentRepository) GetStudentByID(ctx context.Context, id int) (*domain.StudentDetail, error) {
	var detail domain.StudentDetail

	err := sr.db.WithContext(ctx).First(&detail.Student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("could not get student: %w", err)
	}

	detail.EnrolledSubjects = make([]domain.Subject, 0)
	err = sr.db.WithContext(ctx).
		Joins("JOIN student_subject ss ON ss.subject_id = subjects.id").
		Where("ss.student_id = ?", id).
		Order("subjects.name").
		Find(&detail.EnrolledSubjects).Error
	if err != nil {
		return nil, fmt.Errorf("could not get enrolled subjects: %w", err)
	}

	enrolledIDs := sr.db.Model(&domain.StudentSubject{}).
		Select("subject_id").
		Where("student_id = ?", id)

	detail.AvailableSubjects = make([]domain.Subject, 0)
	err = sr.db.WithContext(ctx).
		Where("id NOT IN (?)", enrolledIDs).
		Order("name").
		Find(&detail.AvailableSubjects).Error
	if err != nil {
		return nil, fmt.Errorf("could not get available subjects: %w", err)
	}

	return &detail, nil
}

func (sr *studentRepository) UpdateStudent(ctx context.Context, student *domain.Student) error {
	result := sr.db.WithContext(ctx).
		Model(&domain.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"first_name": student.FirstName,
			"last_name":  student.LastName,
			"phone":      student.Phone,
			"birthdate":  student.Birthdate,
			"email":      student.Email,
		})
	if result.Error != nil {
		if dup := classifyDuplicate(result.Error); dup != nil {
			return dup
		}
		return fmt.Errorf("could not update student: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (sr *studentRepository) DeleteStudent(ctx context.Context, id int) error {
	return sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Enrollments go first so the delete also works on stores that were
		// created without cascading foreign keys enabled.
		err := tx.Where("student_id = ?", id).Delete(&domain.StudentSubject{}).Error
		if err != nil {
			return fmt.Errorf("could not remove enrollments: %w", err)
		}

		result := tx.Delete(&domain.Student{}, id)
		if result.Error != nil {
			return fmt.Errorf("could not delete student: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrStudentNotFound
		}
		return nil
	})
}

// classifyDuplicate maps a unique-constraint violation onto the matching
// domain error. Postgres names the violated constraint; sqlite only reports
// the column in the message text.
func classifyDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return domain.ErrDuplicatePhone
		}
		return domain.ErrDuplicateEmail
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		if strings.Contains(msg, "phone") {
			return domain.ErrDuplicatePhone
		}
		if strings.Contains(msg, "email") {
			return domain.ErrDuplicateEmail
		}
	}
	return nil
}
