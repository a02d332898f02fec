package memory

import (
	"context"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"

	"github.com/pkg/errors"
)

type requestRepository struct {
	src source
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(store *Store) repository.RequestRepository {
	return &requestRepository{src: store}
}

func (repo *requestRepository) Create(ctx context.Context, request *entity.ClientRequest) error {
	return repo.src.write(ctx, func(st *state) error {
		if st.requests.has(request.ID) {
			return errors.Errorf("request %s already exists", request.ID)
		}
		st.requests.add(request.ID, request.Clone(), true)

		return nil
	})
}

func (repo *requestRepository) FindByID(ctx context.Context, id string) (*entity.ClientRequest, error) {
	var out *entity.ClientRequest
	err := repo.src.read(ctx, func(st *state) error {
		req, ok := st.requests.get(id)
		if !ok {
			return repository.ErrRequestNotFound
		}
		out = req.Clone()

		return nil
	})

	return out, err
}

func (repo *requestRepository) Update(ctx context.Context, request *entity.ClientRequest) error {
	return repo.src.write(ctx, func(st *state) error {
		if !st.requests.has(request.ID) {
			return repository.ErrRequestNotFound
		}
		st.requests.put(request.ID, request.Clone())

		return nil
	})
}

// FindOpenBetween returns the pending or accepted request for the pair.
func (repo *requestRepository) FindOpenBetween(ctx context.Context, clientID, lawyerID string) (*entity.ClientRequest, error) {
	var out *entity.ClientRequest
	err := repo.src.read(ctx, func(st *state) error {
		st.requests.each(func(r *entity.ClientRequest) bool {
			if r.Client.ID == clientID && r.Lawyer.ID == lawyerID && r.Status.IsOpen() {
				out = r.Clone()
				return false
			}

			return true
		})
		if out == nil {
			return repository.ErrRequestNotFound
		}

		return nil
	})

	return out, err
}

func (repo *requestRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.ClientRequest, error) {
	var out []*entity.ClientRequest
	err := repo.src.read(ctx, func(st *state) error {
		st.requests.each(func(r *entity.ClientRequest) bool {
			if r.Involves(userID) {
				out = append(out, r.Clone())
			}

			return true
		})

		return nil
	})

	return out, err
}
