package usecase

import (
	"context"
	"time"

	"registration/domain"
)

type enrollmentUC struct {
	enrollmentRepo domain.EnrollmentRepo
	TimeOut        time.Duration
}

func NewEnrollmentUseCase(repo domain.EnrollmentRepo, timeOut time.Duration) domain.EnrollmentUseCase {
	return &enrollmentUC{
		enrollmentRepo: repo,
		TimeOut:        timeOut,
	}
}

func (eUC *enrollmentUC) GetEnrolledSubjectsUC(ctx context.Context, studentID int) (*[]domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	return eUC.enrollmentRepo.GetEnrolledSubjects(ctx, studentID)
}

func (eUC *enrollmentUC) AddSubjectsUC(ctx context.Context, studentID int, subjectIDs []int) (int, error) {
	ids := uniqueIDs(subjectIDs)
	if len(ids) == 0 {
		return 0, domain.ErrNoSubjectIDs
	}

	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	return eUC.enrollmentRepo.AddSubjects(ctx, studentID, ids)
}

func (eUC *enrollmentUC) RemoveSubjectsUC(ctx context.Context, studentID int, subjectIDs []int) (int, error) {
	ids := uniqueIDs(subjectIDs)
	if len(ids) == 0 {
		return 0, domain.ErrNoSubjectIDs
	}

	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	return eUC.enrollmentRepo.RemoveSubjects(ctx, studentID, ids)
}

// uniqueIDs drops repeated ids so a duplicated member of the payload cannot
// inflate the reported counts. Order is preserved.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
