package contracts

import (
	"context"
	"timetable-service/internal/pkg/dto/responses"
)

// IdentityClient resolves opaque identifiers to display names; the scheduler
// core never dereferences identities itself.
type IdentityClient interface {
	FindTeacherByID(ctx context.Context, teacherID string) (*responses.IdentityRecord, error)
	FindSubjectByID(ctx context.Context, subjectID string) (*responses.IdentityRecord, error)
	FindClassByID(ctx context.Context, classID string) (*responses.IdentityRecord, error)
}
