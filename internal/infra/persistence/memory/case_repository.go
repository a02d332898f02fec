package memory

import (
	"context"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"

	"github.com/pkg/errors"
)

type caseRepository struct {
	src source
}

// NewCaseRepository is the constructor for caseRepository.
func NewCaseRepository(store *Store) repository.CaseRepository {
	return &caseRepository{src: store}
}

func (repo *caseRepository) Create(ctx context.Context, c *entity.Case) error {
	return repo.src.write(ctx, func(st *state) error {
		if st.cases.has(c.ID) {
			return errors.Errorf("case %s already exists", c.ID)
		}
		st.cases.add(c.ID, c.Clone(), false)

		return nil
	})
}

func (repo *caseRepository) FindByID(ctx context.Context, id string) (*entity.Case, error) {
	var out *entity.Case
	err := repo.src.read(ctx, func(st *state) error {
		c, ok := st.cases.get(id)
		if !ok {
			return repository.ErrCaseNotFound
		}
		out = c.Clone()

		return nil
	})

	return out, err
}

func (repo *caseRepository) Update(ctx context.Context, c *entity.Case) error {
	return repo.src.write(ctx, func(st *state) error {
		if !st.cases.has(c.ID) {
			return repository.ErrCaseNotFound
		}
		st.cases.put(c.ID, c.Clone())

		return nil
	})
}

func (repo *caseRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.Case, error) {
	return repo.list(ctx, func(c *entity.Case) bool { return c.ClientID == clientID })
}

func (repo *caseRepository) ListByLawyer(ctx context.Context, lawyerID string) ([]*entity.Case, error) {
	return repo.list(ctx, func(c *entity.Case) bool { return c.LawyerID == lawyerID })
}

func (repo *caseRepository) list(ctx context.Context, match func(*entity.Case) bool) ([]*entity.Case, error) {
	var out []*entity.Case
	err := repo.src.read(ctx, func(st *state) error {
		st.cases.each(func(c *entity.Case) bool {
			if match(c) {
				out = append(out, c.Clone())
			}

			return true
		})

		return nil
	})

	return out, err
}
