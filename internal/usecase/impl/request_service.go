package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/domain/service"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager   repository.TransactionManager
	requestRepo repository.RequestRepository
	effects     *sideEffects
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	RequestRepo repository.RequestRepository
	SideEffects SideEffectParams
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:   params.TxManager,
		requestRepo: params.RequestRepo,
		effects:     newSideEffects(params.SideEffects, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendRequest creates a pending request. The duplicate check and the insert run
// in one transaction, so two concurrent sends for the same pair cannot both succeed.
func (srv *requestService) SendRequest(ctx context.Context, clientID, lawyerID string) (*entity.ClientRequest, error) {
	var (
		created       *entity.ClientRequest
		notifications []*entity.Notification
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		requestRepo := repoFactory.NewRequestRepository()
		notificationRepo := repoFactory.NewNotificationRepository()

		client, err := findUserWithRole(ctx, userRepo, clientID, entity.RoleClient)
		if err != nil {
			return err
		}
		lawyer, err := findUserWithRole(ctx, userRepo, lawyerID, entity.RoleLawyer)
		if err != nil {
			return err
		}

		if client.Client.CurrentCase == nil {
			return errors.WithStack(domainerrors.ErrMissingCaseTemplate)
		}

		existing, err := requestRepo.FindOpenBetween(ctx, client.ID, lawyer.ID)
		switch {
		case err == nil:
			return errors.WithStack(domainerrors.ErrDuplicateRequest.WithMessage(
				fmt.Sprintf("You already have a %s request with this lawyer.", existing.Status)))
		case !errors.Is(err, repository.ErrRequestNotFound):
			return errors.Wrap(err, "failed to check open requests")
		}

		req := &entity.ClientRequest{
			ID:          newID(prefixRequest),
			Client:      client.Snapshot(),
			Lawyer:      lawyer.Snapshot(),
			CaseDetails: *client.Client.CurrentCase.Clone(),
			Status:      entity.RequestStatusPending,
		}
		if err := requestRepo.Create(ctx, req); err != nil {
			return errors.Wrap(err, "failed to create request")
		}

		toClient, err := emitNotification(ctx, notificationRepo, client.ID,
			fmt.Sprintf("Your request to %s has been sent successfully.", lawyer.Name))
		if err != nil {
			return errors.Wrap(err, "failed to notify client")
		}
		toLawyer, err := emitNotification(ctx, notificationRepo, lawyer.ID,
			fmt.Sprintf("You have a new client request from %s.", client.Name))
		if err != nil {
			return errors.Wrap(err, "failed to notify lawyer")
		}

		created = req
		notifications = []*entity.Notification{toClient, toLawyer}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send request", slog.String("clientID", clientID), slog.String("lawyerID", lawyerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Request sent", slog.String("requestID", created.ID))
	srv.effects.deliverNotifications(ctx, notifications...)
	srv.effects.publishLifecycle(ctx, service.EventRequestSent, created, "", "")

	return created, nil
}

// AcceptRequest moves the request to accepted and derives exactly one active case
// and one chat. Either every record is written or none is.
func (srv *requestService) AcceptRequest(ctx context.Context, lawyerID, requestID string) (*usecase.AcceptRequestOutput, error) {
	var (
		out           *usecase.AcceptRequestOutput
		notifications []*entity.Notification
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		req, err := srv.transition(ctx, repoFactory.NewRequestRepository(), requestID, entity.RequestStatusAccepted, func(r *entity.ClientRequest) bool {
			return r.Lawyer.ID == lawyerID
		})
		if err != nil {
			return err
		}

		newCase := entity.NewCaseFromTemplate(newID(prefixCase), req.Client.ID, req.Lawyer.ID, req.CaseDetails)
		if err := repoFactory.NewCaseRepository().Create(ctx, newCase); err != nil {
			return errors.Wrap(err, "failed to create case")
		}

		chat := entity.NewChat(req.ChatID(), req.Client, req.Lawyer)
		if err := repoFactory.NewChatRepository().Create(ctx, chat); err != nil {
			if errors.Is(err, repository.ErrChatExists) {
				return errors.Wrap(domainerrors.ErrChatAlreadyExists, chat.ID)
			}

			return errors.Wrap(err, "failed to create chat")
		}

		notificationRepo := repoFactory.NewNotificationRepository()
		toLawyer, err := emitNotification(ctx, notificationRepo, req.Lawyer.ID,
			fmt.Sprintf("You have accepted the case from %s.", req.Client.Name))
		if err != nil {
			return errors.Wrap(err, "failed to notify lawyer")
		}
		toClient, err := emitNotification(ctx, notificationRepo, req.Client.ID,
			fmt.Sprintf("%s has accepted your request. You can now chat with them.", req.Lawyer.Name))
		if err != nil {
			return errors.Wrap(err, "failed to notify client")
		}

		out = &usecase.AcceptRequestOutput{Request: req, Case: newCase, Chat: chat}
		notifications = []*entity.Notification{toLawyer, toClient}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to accept request", slog.String("requestID", requestID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Request accepted",
		slog.String("requestID", requestID),
		slog.String("caseID", out.Case.ID),
		slog.String("chatID", out.Chat.ID),
	)
	srv.effects.deliverNotifications(ctx, notifications...)
	srv.effects.publishLifecycle(ctx, service.EventRequestAccepted, out.Request, out.Case.ID, out.Chat.ID)

	return out, nil
}

// RejectRequest moves a pending request to rejected and tells the client.
func (srv *requestService) RejectRequest(ctx context.Context, lawyerID, requestID string) (*entity.ClientRequest, error) {
	return srv.close(ctx, requestID, entity.RequestStatusRejected, service.EventRequestRejected,
		func(r *entity.ClientRequest) bool { return r.Lawyer.ID == lawyerID },
		func(r *entity.ClientRequest) (string, string) {
			return r.Client.ID, fmt.Sprintf("Your request to %s was not accepted.", r.Lawyer.Name)
		},
	)
}

// CancelRequest moves a pending request to cancelled and tells the lawyer.
func (srv *requestService) CancelRequest(ctx context.Context, clientID, requestID string) (*entity.ClientRequest, error) {
	return srv.close(ctx, requestID, entity.RequestStatusCancelled, service.EventRequestCancelled,
		func(r *entity.ClientRequest) bool { return r.Client.ID == clientID },
		func(r *entity.ClientRequest) (string, string) {
			return r.Lawyer.ID, fmt.Sprintf("%s has cancelled their request.", r.Client.Name)
		},
	)
}

// ListRequests returns every request the user is a party to.
func (srv *requestService) ListRequests(ctx context.Context, userID string) ([]*entity.ClientRequest, error) {
	requests, err := srv.requestRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}
	if requests == nil {
		requests = []*entity.ClientRequest{}
	}

	return requests, nil
}

// close handles the terminal transitions that produce a single notification.
func (srv *requestService) close(
	ctx context.Context,
	requestID string,
	to entity.RequestStatus,
	eventType string,
	allowed func(*entity.ClientRequest) bool,
	notice func(*entity.ClientRequest) (userID, message string),
) (*entity.ClientRequest, error) {
	var (
		updated      *entity.ClientRequest
		notification *entity.Notification
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		req, err := srv.transition(ctx, repoFactory.NewRequestRepository(), requestID, to, allowed)
		if err != nil {
			return err
		}

		userID, message := notice(req)
		notification, err = emitNotification(ctx, repoFactory.NewNotificationRepository(), userID, message)
		if err != nil {
			return errors.Wrap(err, "failed to emit notification")
		}
		updated = req

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to close request", slog.String("requestID", requestID), slog.Any("status", to), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Request closed", slog.String("requestID", requestID), slog.Any("status", to))
	srv.effects.deliverNotifications(ctx, notification)
	srv.effects.publishLifecycle(ctx, eventType, updated, "", "")

	return updated, nil
}

// transition loads a request, checks the actor and applies a guarded state change.
func (srv *requestService) transition(
	ctx context.Context,
	repo repository.RequestRepository,
	requestID string,
	to entity.RequestStatus,
	allowed func(*entity.ClientRequest) bool,
) (*entity.ClientRequest, error) {
	req, err := repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequestNotFound, requestID)
		}

		return nil, errors.Wrap(err, "failed to load request")
	}

	if !allowed(req) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party allowed to change this request")
	}

	if !req.Transition(to) {
		return nil, errors.Wrapf(domainerrors.ErrRequestNotPending, "request %s is %s", req.ID, req.Status)
	}

	if err := repo.Update(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to update request")
	}

	return req, nil
}

// findUserWithRole loads a user and insists on the role variant.
func findUserWithRole(ctx context.Context, repo repository.UserRepository, id string, role entity.Role) (*entity.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "%s %s", role, id)
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if user.Role != role || (role == entity.RoleClient && user.Client == nil) || (role == entity.RoleLawyer && user.Lawyer == nil) {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "%s %s", role, id)
	}

	return user, nil
}
