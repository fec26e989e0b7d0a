package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"registration/domain"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(database *gorm.DB) domain.EnrollmentRepo {
	return &enrollmentRepository{
		db: database,
	}
}

func (er *enrollmentRepository) GetEnrolledSubjects(ctx context.Context, studentID int) (*[]domain.Subject, error) {
	if err := er.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}

	subjects := make([]domain.Subject, 0)
	err := er.db.WithContext(ctx).
		Joins("JOIN student_subject ss ON ss.subject_id = subjects.id").
		Where("ss.student_id = ?", studentID).
		Order("subjects.name").
		Find(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("could not get enrolled subjects: %w", err)
	}
	return &subjects, nil
}

// AddSubjects enrolls the student in every supplied subject that exists and
// is not already associated. Pre-existing pairs are skipped, never an error.
// The returned count covers only the rows actually inserted.
func (er *enrollmentRepository) AddSubjects(ctx context.Context, studentID int, subjectIDs []int) (int, error) {
	if err := er.requireStudent(ctx, studentID); err != nil {
		return 0, err
	}

	var knownIDs []int
	err := er.db.WithContext(ctx).
		Model(&domain.Subject{}).
		Where("id IN ?", subjectIDs).
		Pluck("id", &knownIDs).Error
	if err != nil {
		return 0, fmt.Errorf("could not check subject ids: %w", err)
	}
	if missing := missingFrom(subjectIDs, knownIDs); len(missing) > 0 {
		return 0, domain.NewInvalidSubjectIDsError(missing)
	}

	var enrolledIDs []int
	err = er.db.WithContext(ctx).
		Model(&domain.StudentSubject{}).
		Where("student_id = ? AND subject_id IN ?", studentID, subjectIDs).
		Pluck("subject_id", &enrolledIDs).Error
	if err != nil {
		return 0, fmt.Errorf("could not check existing enrollments: %w", err)
	}

	toAdd := missingFrom(subjectIDs, enrolledIDs)
	if len(toAdd) == 0 {
		return 0, nil
	}

	rows := make([]domain.StudentSubject, 0, len(toAdd))
	for _, subjectID := range toAdd {
		rows = append(rows, domain.StudentSubject{
			StudentID: studentID,
			SubjectID: subjectID,
		})
	}

	// A pair raced in between the check and the insert is skipped, keeping
	// the operation idempotent.
	err = er.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("could not insert enrollments: %w", err)
	}
	return len(toAdd), nil
}

// RemoveSubjects deletes whatever associations match; subject ids that were
// never enrolled are silently ignored and no global existence check is made.
func (er *enrollmentRepository) RemoveSubjects(ctx context.Context, studentID int, subjectIDs []int) (int, error) {
	if err := er.requireStudent(ctx, studentID); err != nil {
		return 0, err
	}

	result := er.db.WithContext(ctx).
		Where("student_id = ? AND subject_id IN ?", studentID, subjectIDs).
		Delete(&domain.StudentSubject{})
	if result.Error != nil {
		return 0, fmt.Errorf("could not remove enrollments: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}

func (er *enrollmentRepository) requireStudent(ctx context.Context, studentID int) error {
	var count int64
	err := er.db.WithContext(ctx).
		Model(&domain.Student{}).
		Where("id = ?", studentID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("could not check student: %w", err)
	}
	if count == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func missingFrom(want, have []int) []int {
	present := make(map[int]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}

	var missing []int
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
