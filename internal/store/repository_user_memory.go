package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
//
// Records live in a map keyed by id with secondary indices on email and
// username. The uniqueness check and the write happen under the same lock, so
// concurrent inserts of the same email or username have exactly one winner.
type memoryUserRepository struct {
	mu sync.RWMutex

	users      map[int64]models.User
	byEmail    map[string]int64
	byUsername map[string]int64
	lastID     int64

	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:      make(map[int64]models.User),
		byEmail:    make(map[string]int64),
		byUsername: make(map[string]int64),
		logger:     logger,
	}
}

func (m *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *memoryUserRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (m *memoryUserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byUsername[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return m.users[id], nil
}

func (m *memoryUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return m.users[id], nil
}

func (m *memoryUserRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	var previous models.User
	if user.ID != 0 {
		var ok bool
		if previous, ok = m.users[user.ID]; !ok {
			return models.User{}, ErrNoUserWasFound
		}
	}

	// the record being replaced may keep its own email/username
	if id, ok := m.byEmail[user.Email]; ok && id != user.ID {
		log.Debug().Str("func", "*memoryUserRepository.Save").Str("email", user.Email).Msg("email already taken")
		return models.User{}, ErrEmailAlreadyExists
	}
	if id, ok := m.byUsername[user.Username]; ok && id != user.ID {
		log.Debug().Str("func", "*memoryUserRepository.Save").Str("username", user.Username).Msg("username already taken")
		return models.User{}, ErrUsernameAlreadyExists
	}

	if user.ID == 0 {
		m.lastID++
		user.ID = m.lastID
	} else {
		delete(m.byEmail, previous.Email)
		delete(m.byUsername, previous.Username)
	}

	m.users[user.ID] = user
	m.byEmail[user.Email] = user.ID
	m.byUsername[user.Username] = user.ID

	return user, nil
}

func (m *memoryUserRepository) DeleteByID(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil
	}

	delete(m.users, id)
	delete(m.byEmail, user.Email)
	delete(m.byUsername, user.Username)

	return nil
}

func (m *memoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b models.User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return users, nil
}
