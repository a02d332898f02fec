package memory

import (
	"context"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"

	"github.com/pkg/errors"
)

type notificationRepository struct {
	src source
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{src: store}
}

// Create prepends so the newest notification is always first.
func (repo *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	return repo.src.write(ctx, func(st *state) error {
		if st.notifications.has(n.ID) {
			return errors.Errorf("notification %s already exists", n.ID)
		}
		cp := *n
		st.notifications.add(n.ID, &cp, true)

		return nil
	})
}

func (repo *notificationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	out := []*entity.Notification{}
	err := repo.src.read(ctx, func(st *state) error {
		st.notifications.each(func(n *entity.Notification) bool {
			if n.UserID == userID {
				cp := *n
				out = append(out, &cp)
			}

			return true
		})

		return nil
	})

	return out, err
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	marked := 0
	err := repo.src.write(ctx, func(st *state) error {
		var unread []*entity.Notification
		st.notifications.each(func(n *entity.Notification) bool {
			if n.UserID == userID && !n.Read {
				unread = append(unread, n)
			}

			return true
		})
		for _, n := range unread {
			cp := *n
			cp.Read = true
			st.notifications.put(cp.ID, &cp)
		}
		marked = len(unread)

		return nil
	})

	return marked, err
}
