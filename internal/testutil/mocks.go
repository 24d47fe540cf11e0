package testutil

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/brandkitai/brandkit/internal/ai"
	"github.com/brandkitai/brandkit/internal/domain/brandkit"
	"github.com/brandkitai/brandkit/internal/domain/subscription"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
)

// MockUserRepository is an in-memory implementation of user.Repository
type MockUserRepository struct {
	mu          sync.Mutex
	Users       map[int64]*user.User
	KeyIndex    map[string]int64
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:    make(map[int64]*user.User),
		KeyIndex: make(map[string]int64),
		NextID:   1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.KeyIndex[u.IdentityKey]; exists {
		return errors.Conflict("identity key already exists")
	}
	u.ID = m.NextID
	m.NextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	m.Users[u.ID] = &cp
	m.KeyIndex[u.IdentityKey] = u.ID
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	cp := *u
	return &cp, nil
}

func (m *MockUserRepository) GetByIdentityKey(ctx context.Context, identityKey string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.KeyIndex[identityKey]
	if !ok {
		return nil, errors.NotFound("User")
	}
	cp := *m.Users[id]
	return &cp, nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[u.ID]; !ok {
		return errors.NotFound("User")
	}
	u.UpdatedAt = time.Now()
	cp := *u
	m.Users[u.ID] = &cp
	return nil
}

// MockBrandKitRepository is an in-memory implementation of brandkit.Repository.
// CreateWithQuota enforces the free-plan limit against the backing user repo
// the same way the real transaction does.
type MockBrandKitRepository struct {
	mu          sync.Mutex
	Kits        map[int64]*brandkit.BrandKit
	NextID      int64
	Users       *MockUserRepository
	CreateError error
	GetError    error
	PatchError  error
}

func NewMockBrandKitRepository(users *MockUserRepository) *MockBrandKitRepository {
	return &MockBrandKitRepository{
		Kits:   make(map[int64]*brandkit.BrandKit),
		NextID: 1,
		Users:  users,
	}
}

func (m *MockBrandKitRepository) CreateWithQuota(ctx context.Context, kit *brandkit.BrandKit) (int64, error) {
	if m.CreateError != nil {
		return 0, m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Users.mu.Lock()
	owner, ok := m.Users.Users[kit.UserID]
	if !ok {
		m.Users.mu.Unlock()
		return 0, errors.NotFound("User")
	}
	if owner.Plan != user.PlanPro && owner.BrandKitCount >= user.FreePlanKitLimit {
		m.Users.mu.Unlock()
		return 0, errors.QuotaExceeded("Free plan limit reached. Upgrade to Pro.")
	}
	owner.BrandKitCount++
	m.Users.mu.Unlock()

	kit.ID = m.NextID
	m.NextID++
	now := time.Now()
	kit.CreatedAt = now
	kit.UpdatedAt = now
	cp := *kit
	m.Kits[kit.ID] = &cp
	return kit.ID, nil
}

func (m *MockBrandKitRepository) GetByID(ctx context.Context, id int64) (*brandkit.BrandKit, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kit, ok := m.Kits[id]
	if !ok {
		return nil, errors.NotFound("Brand kit")
	}
	cp := *kit
	return &cp, nil
}

func (m *MockBrandKitRepository) ListByUser(ctx context.Context, userID int64) ([]*brandkit.BrandKit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*brandkit.BrandKit{}
	for _, kit := range m.Kits {
		if kit.UserID == userID {
			cp := *kit
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (m *MockBrandKitRepository) ApplyPatch(ctx context.Context, id int64, patch *brandkit.GeneratedPatch) error {
	if m.PatchError != nil {
		return m.PatchError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kit, ok := m.Kits[id]
	if !ok {
		return errors.NotFound("Brand kit")
	}
	patch.Apply(kit)
	kit.UpdatedAt = time.Now()
	return nil
}

func (m *MockBrandKitRepository) SetGeneratedField(ctx context.Context, id int64, field brandkit.GeneratableField, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kit, ok := m.Kits[id]
	if !ok {
		return errors.NotFound("Brand kit")
	}
	switch field {
	case brandkit.FieldTagline:
		kit.Tagline = &value
	case brandkit.FieldBrandSummary:
		kit.BrandSummary = &value
	case brandkit.FieldBrandVoice:
		kit.BrandVoice = &value
	default:
		return errors.BadRequest("Unknown field")
	}
	kit.UpdatedAt = time.Now()
	return nil
}

// MockSubscriptionRepository is an in-memory implementation of
// subscription.Repository
type MockSubscriptionRepository struct {
	mu     sync.Mutex
	Subs   map[int64]*subscription.Subscription
	NextID int64
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		Subs:   make(map[int64]*subscription.Subscription),
		NextID: 1,
	}
}

func (m *MockSubscriptionRepository) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if existing, ok := m.Subs[sub.UserID]; ok {
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
	} else {
		sub.ID = m.NextID
		m.NextID++
		sub.CreatedAt = now
	}
	sub.UpdatedAt = now
	cp := *sub
	m.Subs[sub.UserID] = &cp
	return nil
}

func (m *MockSubscriptionRepository) GetByUser(ctx context.Context, userID int64) (*subscription.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.Subs[userID]
	if !ok {
		return nil, errors.NotFound("Subscription")
	}
	cp := *sub
	return &cp, nil
}

// FakeGenerator replays scripted chunks as a generation stream and records
// the prompt it was asked for.
type FakeGenerator struct {
	Chunks     []string
	Err        error // returned from GenerateStream
	RecvErr    error // returned after the chunks instead of EOF
	LastPrompt string
}

func (g *FakeGenerator) GenerateStream(ctx context.Context, prompt string) (ai.Stream, error) {
	g.LastPrompt = prompt
	if g.Err != nil {
		return nil, g.Err
	}
	return &fakeStream{chunks: g.Chunks, recvErr: g.RecvErr}, nil
}

type fakeStream struct {
	chunks  []string
	recvErr error
	pos     int
}

func (s *fakeStream) Recv() (string, error) {
	if s.pos >= len(s.chunks) {
		if s.recvErr != nil {
			return "", s.recvErr
		}
		return "", io.EOF
	}
	chunk := s.chunks[s.pos]
	s.pos++
	return chunk, nil
}

func (s *fakeStream) Close() error { return nil }
