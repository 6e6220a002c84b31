package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// memoryUserRepository keeps user records in process memory. Records are
// indexed by ID and by email; both maps change together under mu.
type memoryUserRepository struct {
	mu            sync.RWMutex
	byID          map[string]models.User
	idByEmail     map[string]string
	uuidGenerator *utils.UUIDGenerator
	now           func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository(log *logger.Logger) UserRepository {
	log.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		byID:          make(map[string]models.User),
		idByEmail:     make(map[string]string),
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           time.Now,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.idByEmail[user.Email]; taken {
		logger.FromContext(ctx).Debug().Str("func", "*memoryUserRepository.CreateUser").Msg("email already exists")
		return models.User{}, ErrEmailAlreadyExists
	}

	user.ID = r.uuidGenerator.Generate()
	user.CreatedAt = r.now().UTC()

	r.byID[user.ID] = user
	r.idByEmail[user.Email] = user.ID

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return r.byID[id], nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}
