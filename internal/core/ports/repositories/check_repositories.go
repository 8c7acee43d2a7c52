package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

type CheckReader interface {
	FindCheckByID(ctx context.Context, companyID, checkID string) (*domain.Check, error)
	// ListChecks returns one page ordered by due date ascending, and the total count.
	ListChecks(ctx context.Context, companyID string, filter domain.CheckFilter) ([]domain.Check, int, error)
	// ListPendingDueBetween returns PENDING checks whose due date falls in [from, to].
	ListPendingDueBetween(ctx context.Context, companyID string, from, to time.Time) ([]domain.Check, error)
}

type CheckWriter interface {
	SaveCheck(ctx context.Context, check domain.Check) error
	// UpdateCheckStatus moves a check from one status to another. It fails with
	// apperrors.ErrValidation if the stored status is no longer from.
	UpdateCheckStatus(ctx context.Context, companyID, checkID string, from, to domain.CheckStatus, userID string, now time.Time) error
}

type CheckRepositoryFacade interface {
	CheckReader
	CheckWriter
}
