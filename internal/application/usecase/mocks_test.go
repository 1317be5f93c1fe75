package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/tu-usuario/it-supplies-api/internal/application/audit"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de repositorios (testify/mock)
// ──────────────────────────────────────────────────────────────────────────────

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepoMock) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProductRepoMock struct {
	mock.Mock
}

func (m *ProductRepoMock) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductRepoMock) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductRepoMock) Search(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductRepoMock) AdjustQuantity(ctx context.Context, id string, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *ProductRepoMock) CountByType(ctx context.Context, productType string) (int, error) {
	args := m.Called(ctx, productType)
	return args.Int(0), args.Error(1)
}

type AssetRepoMock struct {
	mock.Mock
}

func (m *AssetRepoMock) Create(ctx context.Context, asset *entity.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *AssetRepoMock) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Asset), args.Error(1)
}

func (m *AssetRepoMock) GetByName(ctx context.Context, name string) (*entity.Asset, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Asset), args.Error(1)
}

func (m *AssetRepoMock) List(ctx context.Context) ([]*entity.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Asset), args.Error(1)
}

func (m *AssetRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssetRepoMock) AddProduct(ctx context.Context, assetID, productID string) error {
	args := m.Called(ctx, assetID, productID)
	return args.Error(0)
}

type DescriptorRepoMock struct {
	mock.Mock
}

func (m *DescriptorRepoMock) Create(ctx context.Context, descriptor *entity.Descriptor) error {
	args := m.Called(ctx, descriptor)
	return args.Error(0)
}

func (m *DescriptorRepoMock) GetByID(ctx context.Context, id string) (*entity.Descriptor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Descriptor), args.Error(1)
}

func (m *DescriptorRepoMock) GetByName(ctx context.Context, name string) (*entity.Descriptor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Descriptor), args.Error(1)
}

func (m *DescriptorRepoMock) List(ctx context.Context) ([]*entity.Descriptor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Descriptor), args.Error(1)
}

func (m *DescriptorRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type LogRepoMock struct {
	mock.Mock
}

func (m *LogRepoMock) Create(ctx context.Context, entry *entity.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *LogRepoMock) List(ctx context.Context, filter entity.LogFilter, limit, offset int) ([]*entity.LogEntry, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.LogEntry), args.Int(1), args.Error(2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Doble del Sink de auditoría: captura las llamadas para aseverar sobre ellas
// ──────────────────────────────────────────────────────────────────────────────

type recordedEntry struct {
	Action  string
	UserID  *string
	Details map[string]any
	Meta    audit.RequestMeta
}

// SinkSpy implementa audit.Sink acumulando cada Record en memoria.
type SinkSpy struct {
	mu      sync.Mutex
	Entries []recordedEntry
}

func (s *SinkSpy) Record(ctx context.Context, action string, userID *string, details map[string]any, meta audit.RequestMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, recordedEntry{Action: action, UserID: userID, Details: details, Meta: meta})
}

// Actions devuelve las acciones registradas en orden.
func (s *SinkSpy) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, e.Action)
	}
	return out
}

var _ repository.UserRepository = (*UserRepoMock)(nil)
var _ repository.ProductRepository = (*ProductRepoMock)(nil)
var _ repository.AssetRepository = (*AssetRepoMock)(nil)
var _ repository.DescriptorRepository = (*DescriptorRepoMock)(nil)
var _ repository.LogRepository = (*LogRepoMock)(nil)
var _ audit.Sink = (*SinkSpy)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner falso: ejecuta fn con los repos provistos, sin transacción real
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	assetRepo   repository.AssetRepository
	productRepo repository.ProductRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.AssetRepository, repository.ProductRepository) error) error {
	return fn(f.assetRepo, f.productRepo)
}
