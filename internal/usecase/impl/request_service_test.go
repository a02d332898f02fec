package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/service"
	mockService "lawyerup/internal/mocks/service"
	"lawyerup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service   usecase.RequestUsecase
	store     *testStore
	sink      *mockService.MockNotificationSink
	publisher *mockService.MockEventPublisher
}

func createTestRequestService(t *testing.T, seed bool) requestServiceFixtures {
	ts := newTestStore(t, seed)
	sink := mockService.NewMockNotificationSink(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewRequestService(RequestServiceParams{
		TxManager:   ts.txManager,
		RequestRepo: ts.requestRepo,
		SideEffects: SideEffectParams{Sink: sink, Publisher: publisher},
		Logger:      newDiscardLogger(),
	})

	return requestServiceFixtures{service: svc, store: ts, sink: sink, publisher: publisher}
}

func (fx requestServiceFixtures) expectDeliveries(n int) {
	fx.sink.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil).Times(n)
}

func (fx requestServiceFixtures) expectEvent(eventType string) {
	fx.publisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.MatchedBy(func(e *service.LifecycleEvent) bool { return e.Type == eventType })).
		Return(nil).
		Once()
}

func cyberLawCase() *entity.CaseTemplate {
	return &entity.CaseTemplate{
		CaseType:    "Cyber Law",
		Description: "Source code theft",
		Urgency:     entity.UrgencyHigh,
		Status:      entity.CaseStatusPending,
		Notes:       []string{},
		Files:       []string{},
	}
}

func TestRequestService_Scenario_SendThenAccept(t *testing.T) {
	fx := createTestRequestService(t, false)
	ctx := context.Background()
	fx.store.addClient(t, "c1", "John Doe", cyberLawCase())
	fx.store.addLawyer(t, "l1", "Anjali Sharma", 12)

	fx.expectDeliveries(2)
	fx.expectEvent(service.EventRequestSent)

	req, err := fx.service.SendRequest(ctx, "c1", "l1")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, req.Status)
	assert.Equal(t, "Cyber Law", req.CaseDetails.CaseType)
	assert.Equal(t, entity.UrgencyHigh, req.CaseDetails.Urgency)

	clientNotes := fx.store.notifications(t, "c1")
	lawyerNotes := fx.store.notifications(t, "l1")
	require.Len(t, clientNotes, 1)
	require.Len(t, lawyerNotes, 1)
	assert.Equal(t, "Your request to Anjali Sharma has been sent successfully.", clientNotes[0].Message)
	assert.Equal(t, "You have a new client request from John Doe.", lawyerNotes[0].Message)
	assert.False(t, clientNotes[0].Read)

	fx.expectDeliveries(2)
	fx.expectEvent(service.EventRequestAccepted)

	out, err := fx.service.AcceptRequest(ctx, "l1", req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, out.Request.Status)
	assert.Equal(t, entity.CaseStatusActive, out.Case.Status)
	assert.Equal(t, "l1", out.Case.LawyerID)
	assert.Equal(t, "c1", out.Case.ClientID)
	assert.Equal(t, "chat-"+req.ID, out.Chat.ID)
	assert.ElementsMatch(t, []string{"c1", "l1"}, out.Chat.ParticipantIDs)
	assert.Empty(t, out.Chat.Messages)

	cases, err := fx.store.caseRepo.ListByLawyer(ctx, "l1")
	require.NoError(t, err)
	assert.Len(t, cases, 1)

	clientNotes = fx.store.notifications(t, "c1")
	lawyerNotes = fx.store.notifications(t, "l1")
	require.Len(t, clientNotes, 2)
	require.Len(t, lawyerNotes, 2)
	assert.Equal(t, "Anjali Sharma has accepted your request. You can now chat with them.", clientNotes[0].Message)
	assert.Equal(t, "You have accepted the case from John Doe.", lawyerNotes[0].Message)

	stored, err := fx.store.requestRepo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, stored.Status)
}

func TestRequestService_SendRequest_DuplicateOpenRequest(t *testing.T) {
	fx := createTestRequestService(t, true)

	_, err := fx.service.SendRequest(context.Background(), "c1", "l1")

	require.ErrorIs(t, err, domainerrors.ErrDuplicateRequest)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You already have a pending request with this lawyer.", appErr.Message())
	assert.Empty(t, fx.store.notifications(t, "c1"))
}

func TestRequestService_SendRequest_AllowedAfterTerminal(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()

	fx.expectDeliveries(1)
	fx.expectEvent(service.EventRequestRejected)
	_, err := fx.service.RejectRequest(ctx, "l1", "req1")
	require.NoError(t, err)

	fx.expectDeliveries(2)
	fx.expectEvent(service.EventRequestSent)
	req, err := fx.service.SendRequest(ctx, "c1", "l1")
	require.NoError(t, err)
	assert.NotEqual(t, "req1", req.ID)
}

func TestRequestService_SendRequest_DuplicateAccepted(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()

	fx.expectDeliveries(2)
	fx.expectEvent(service.EventRequestAccepted)
	_, err := fx.service.AcceptRequest(ctx, "l1", "req1")
	require.NoError(t, err)

	_, err = fx.service.SendRequest(ctx, "c1", "l1")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_REQUEST", appErr.ErrorCode())
	assert.Equal(t, "You already have a accepted request with this lawyer.", appErr.Message())
}

func TestRequestService_SendRequest_MissingCaseTemplate(t *testing.T) {
	fx := createTestRequestService(t, false)
	fx.store.addClient(t, "c9", "No Case", nil)
	fx.store.addLawyer(t, "l1", "Anjali Sharma", 12)

	_, err := fx.service.SendRequest(context.Background(), "c9", "l1")

	require.ErrorIs(t, err, domainerrors.ErrMissingCaseTemplate)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "No case details found for the client.", appErr.Message())
}

func TestRequestService_SendRequest_UnknownLawyer(t *testing.T) {
	fx := createTestRequestService(t, true)

	_, err := fx.service.SendRequest(context.Background(), "c1", "c1")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRequestService_AcceptRequest_Twice(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()

	fx.expectDeliveries(2)
	fx.expectEvent(service.EventRequestAccepted)
	_, err := fx.service.AcceptRequest(ctx, "l1", "req1")
	require.NoError(t, err)

	_, err = fx.service.AcceptRequest(ctx, "l1", "req1")
	require.ErrorIs(t, err, domainerrors.ErrRequestNotPending)

	cases, err := fx.store.caseRepo.ListByLawyer(ctx, "l1")
	require.NoError(t, err)
	assert.Len(t, cases, 1)
	assert.Len(t, fx.store.notifications(t, "l1"), 1)
}

func TestRequestService_AcceptRequest_WrongLawyer(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()

	_, err := fx.service.AcceptRequest(ctx, "l2", "req1")
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	req, err := fx.store.requestRepo.FindByID(ctx, "req1")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, req.Status)
}

func TestRequestService_AcceptRequest_ChatAlreadyExistsRollsBack(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()
	require.NoError(t, fx.store.chatRepo.Create(ctx, entity.NewChat("chat-req1",
		entity.PartySnapshot{ID: "c1"}, entity.PartySnapshot{ID: "l1"})))

	_, err := fx.service.AcceptRequest(ctx, "l1", "req1")
	require.ErrorIs(t, err, domainerrors.ErrChatAlreadyExists)

	req, err := fx.store.requestRepo.FindByID(ctx, "req1")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, req.Status)

	cases, err := fx.store.caseRepo.ListByLawyer(ctx, "l1")
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestRequestService_AcceptRequest_NotFound(t *testing.T) {
	fx := createTestRequestService(t, true)

	_, err := fx.service.AcceptRequest(context.Background(), "l1", "nope")

	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestRequestService_RejectRequest(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()

	fx.expectDeliveries(1)
	fx.expectEvent(service.EventRequestRejected)

	req, err := fx.service.RejectRequest(ctx, "l1", "req1")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, req.Status)

	notes := fx.store.notifications(t, "c1")
	require.Len(t, notes, 1)
	assert.Equal(t, "Your request to Anjali Sharma was not accepted.", notes[0].Message)

	_, err = fx.service.CancelRequest(ctx, "c1", "req1")
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotPending)
}

func TestRequestService_CancelRequest(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()

	_, err := fx.service.CancelRequest(ctx, "l1", "req1")
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	fx.expectDeliveries(1)
	fx.expectEvent(service.EventRequestCancelled)

	req, err := fx.service.CancelRequest(ctx, "c1", "req1")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCancelled, req.Status)

	notes := fx.store.notifications(t, "l1")
	require.Len(t, notes, 1)
	assert.Equal(t, "John Doe has cancelled their request.", notes[0].Message)
}

func TestRequestService_SideEffectFailuresDoNotFailTheOperation(t *testing.T) {
	fx := createTestRequestService(t, true)

	fx.sink.EXPECT().Deliver(mock.Anything, mock.Anything).Return(assert.AnError).Times(2)
	fx.publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	out, err := fx.service.AcceptRequest(context.Background(), "l1", "req1")

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, out.Request.Status)
}

func TestRequestService_ConcurrentSendsCreateOneRequest(t *testing.T) {
	fx := createTestRequestService(t, true)
	ctx := context.Background()

	fx.expectDeliveries(2)
	fx.expectEvent(service.EventRequestSent)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := fx.service.SendRequest(ctx, "c1", "l2"); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())

	requests, err := fx.service.ListRequests(ctx, "l2")
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestRequestService_ListRequests(t *testing.T) {
	fx := createTestRequestService(t, true)

	requests, err := fx.service.ListRequests(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "req1", requests[0].ID)

	none, err := fx.service.ListRequests(context.Background(), "l7")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
