package domain

import (
	"context"
)

type Subject struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"name"`
}

// StudentSubject is the enrollment junction row. The composite primary key
// makes a (student, subject) pair unique; both foreign keys cascade so
// deleting either parent removes the association.
type StudentSubject struct {
	StudentID int      `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	Student   *Student `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SubjectID int      `gorm:"primaryKey;autoIncrement:false" json:"subject_id"`
	Subject   *Subject `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (StudentSubject) TableName() string {
	return "student_subject"
}

type SubjectIDsPayload struct {
	SubjectIDs []int `json:"subject_ids"`
}

type EnrollmentRepo interface {
	GetEnrolledSubjects(ctx context.Context, studentID int) (*[]Subject, error)
	AddSubjects(ctx context.Context, studentID int, subjectIDs []int) (int, error)
	RemoveSubjects(ctx context.Context, studentID int, subjectIDs []int) (int, error)
}

type EnrollmentUseCase interface {
	GetEnrolledSubjectsUC(ctx context.Context, studentID int) (*[]Subject, error)
	AddSubjectsUC(ctx context.Context, studentID int, subjectIDs []int) (int, error)
	RemoveSubjectsUC(ctx context.Context, studentID int, subjectIDs []int) (int, error)
}
