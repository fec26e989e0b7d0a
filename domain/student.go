package domain

import (
	"context"
)

type Student struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(50);not null" json:"first_name" valid:"required~First name is required"`
	LastName  string `gorm:"type:varchar(50);not null" json:"last_name" valid:"required~Last name is required"`
	Phone     string `gorm:"type:varchar(15);not null;unique" json:"phone" valid:"required~Phone is required"`
	Birthdate string `gorm:"type:varchar(10);not null" json:"birthdate" valid:"required~Birthdate is required"`
	Email     string `gorm:"type:varchar(255);not null;unique" json:"email" valid:"required~Email is required"`
}

// StudentDetail is the read model for a single student: the record itself
// plus the subjects the student is enrolled in and the complement set still
// available to enroll in. Both lists are ordered alphabetically by name.
type StudentDetail struct {
	Student
	EnrolledSubjects  []Subject `json:"enrolled_subjects"`
	AvailableSubjects []Subject `json:"available_subjects"`
}

type StudentRepo interface {
	CreateStudent(ctx context.Context, student *Student) error
	GetAllStudent(ctx context.Context) (*[]Student, error)
	GetStudentByID(ctx context.Context, id int) (*StudentDetail, error)
	UpdateStudent(ctx context.Context, student *Student) error
	DeleteStudent(ctx context.Context, id int) error
}

type StudentUseCase interface {
	CreateStudentUC(ctx context.Context, student *Student) error
	GetAllStudentUC(ctx context.Context) (*[]Student, error)
	GetStudentByIDUC(ctx context.Context, id int) (*StudentDetail, error)
	UpdateStudentUC(ctx context.Context, student *Student) error
	DeleteStudentUC(ctx context.Context, id int) error
}
