package mocks

import (
	"context"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockRepository мок generic repository.Repository
type MockRepository[E any, F any] struct {
	mock.Mock
}

// MockClienteRepository мок репозитория клиентов
type MockClienteRepository = MockRepository[domain.Cliente, domain.ClienteInput]

// MockProdutoRepository мок репозитория продуктов
type MockProdutoRepository = MockRepository[domain.Produto, domain.ProdutoInput]

func (m *MockRepository[E, F]) GetAll(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]E), args.Error(1)
}

func (m *MockRepository[E, F]) GetByID(ctx context.Context, id int64) (E, error) {
	args := m.Called(ctx, id)
	return entity[E](args.Get(0)), args.Error(1)
}

func (m *MockRepository[E, F]) Create(ctx context.Context, input F) (E, error) {
	args := m.Called(ctx, input)
	return entity[E](args.Get(0)), args.Error(1)
}

func (m *MockRepository[E, F]) Update(ctx context.Context, id int64, input F) (E, error) {
	args := m.Called(ctx, id, input)
	return entity[E](args.Get(0)), args.Error(1)
}

func (m *MockRepository[E, F]) Delete(ctx context.Context, id int64) (E, error) {
	args := m.Called(ctx, id)
	return entity[E](args.Get(0)), args.Error(1)
}

func entity[E any](v any) E {
	if e, ok := v.(E); ok {
		return e
	}
	var zero E
	return zero
}

// MockPinger мок проверки доступности БД
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
