package service_test

import (
	"context"
	"testing"

	"github.com/jeffleon2/ebanking/internal/audit/dto"
	"github.com/jeffleon2/ebanking/internal/audit/models"
	"github.com/jeffleon2/ebanking/internal/audit/service"
	"github.com/jeffleon2/ebanking/internal/audit/service/mocks"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	client = identity.Principal{UserID: "user-1", Roles: []string{identity.RoleClient}}
	admin  = identity.Principal{UserID: "root", Roles: []string{identity.RoleAdmin}}
)

func TestConsume_CorrelationFromKey(t *testing.T) {
	repo := mocks.NewMockAuditRepo(t)
	svc := service.NewAuditService(repo)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *models.AuditLog) bool {
			return l.ActionType == "PAYMENT_COMPLETED" && l.CorrelationID == "trace-1" && l.Status == models.StatusSuccess
		})).
		Return(nil).
		Once()

	err := svc.Consume(ctx, []byte("trace-1"), []byte(`{"user_id":"u","action_type":"PAYMENT_COMPLETED","service_name":"payment-service","status":"SUCCESS"}`))

	assert.NoError(t, err)
}

func TestConsume_InvalidJSON(t *testing.T) {
	repo := mocks.NewMockAuditRepo(t)
	svc := service.NewAuditService(repo)

	err := svc.Consume(context.Background(), nil, []byte(`{"user_id":`))

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecord_ClientLogsUnderOwnID(t *testing.T) {
	repo := mocks.NewMockAuditRepo(t)
	svc := service.NewAuditService(repo)
	ctx := identity.WithCorrelationID(context.Background(), "cid-9")

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *models.AuditLog) bool {
			return l.UserID == "user-1" && l.IPAddress == "10.0.0.1" && l.UserAgent == "curl" && l.CorrelationID == "cid-9"
		})).
		Return(nil).
		Once()

	entry, err := svc.Record(ctx, client, &dto.Event{UserID: "someone-else", ActionType: "login"}, "10.0.0.1", "curl")

	require.NoError(t, err)
	assert.Equal(t, "LOGIN", entry.ActionType)
	assert.Equal(t, models.StatusSuccess, entry.Status)
}

func TestRecordExternal_RequiresServiceName(t *testing.T) {
	repo := mocks.NewMockAuditRepo(t)
	svc := service.NewAuditService(repo)

	_, err := svc.RecordExternal(context.Background(), &dto.Event{ActionType: "X"})
	assert.ErrorIs(t, err, models.ErrServiceNameRequired)

	_, err = svc.RecordExternal(context.Background(), &dto.Event{ActionType: "X", ServiceName: "card-service", Status: "MAYBE"})
	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestUserHistory(t *testing.T) {
	repo := mocks.NewMockAuditRepo(t)
	svc := service.NewAuditService(repo)
	ctx := context.Background()

	_, err := svc.UserHistory(ctx, client, "user-2", models.Filter{})
	assert.ErrorIs(t, err, models.ErrNotOwnHistory)

	repo.EXPECT().
		Search(ctx, mock.MatchedBy(func(f models.Filter) bool {
			return f.UserID == "user-1" && f.Size == 20 && f.Page == 1 && f.ActionType == "CRYPTO_BUY"
		})).
		Return([]models.AuditLog{{ID: "a"}}, int64(41), nil).
		Once()

	page, err := svc.UserHistory(ctx, client, "user-1", models.Filter{Page: 1, ActionType: "CRYPTO_BUY"})

	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, "user-1", page.UserID)
}

func TestHistory_InvalidStatus(t *testing.T) {
	svc := service.NewAuditService(mocks.NewMockAuditRepo(t))

	_, err := svc.History(context.Background(), models.Filter{Status: "NOPE"})

	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestErrors_FiltersFailureStatuses(t *testing.T) {
	repo := mocks.NewMockAuditRepo(t)
	svc := service.NewAuditService(repo)
	ctx := context.Background()

	repo.EXPECT().
		Search(ctx, mock.MatchedBy(func(f models.Filter) bool {
			return f.Status == "" && assert.ObjectsAreEqual(models.ErrorStatuses, f.Statuses) && f.Size == 200
		})).
		Return(nil, int64(0), nil).
		Once()

	page, err := svc.Errors(ctx, models.Filter{Status: "SUCCESS", Size: 5000})

	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalPages)
}

func TestStats(t *testing.T) {
	repo := mocks.NewMockAuditRepo(t)
	svc := service.NewAuditService(repo)
	ctx := context.Background()

	repo.EXPECT().CountBy(ctx, models.Filter{UserID: "user-1"}, "status").
		Return(map[string]int64{"SUCCESS": 7, "FAILURE": 2}, nil).Once()
	repo.EXPECT().CountBy(ctx, models.Filter{Statuses: models.ErrorStatuses}, "service_name").
		Return(map[string]int64{"payment-service": 3, "card-service": 1}, nil).Once()

	user, err := svc.UserStats(ctx, admin, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.TotalActions)

	errs, err := svc.ErrorStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), errs.TotalErrors)
}
