package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/testutils"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clienteColumns = []string{"id", "nome", "email", "telefone", "endereco", "cidade", "uf"}
	produtoColumns = []string{"id", "nome", "marca", "preco", "peso"}
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func q(sql string) string {
	return "^" + regexp.QuoteMeta(sql) + "$"
}

func TestNewTable_Statements(t *testing.T) {
	repo := NewClienteRepository(nil, testutils.TestLogger(t))

	assert.Equal(t, "SELECT id, nome, email, telefone, endereco, cidade, uf FROM cliente", repo.selectAll)
	assert.Equal(t, "SELECT id, nome, email, telefone, endereco, cidade, uf FROM cliente WHERE id = $1", repo.selectByID)
	assert.Equal(t,
		"INSERT INTO cliente (nome, email, telefone, endereco, cidade, uf) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, nome, email, telefone, endereco, cidade, uf",
		repo.insert)
	assert.Equal(t,
		"UPDATE cliente SET nome = $1, email = $2, telefone = $3, endereco = $4, cidade = $5, uf = $6 WHERE id = $7 RETURNING id, nome, email, telefone, endereco, cidade, uf",
		repo.update)
	assert.Equal(t, "DELETE FROM cliente WHERE id = $1 RETURNING id, nome, email, telefone, endereco, cidade, uf", repo.delete)

	produtos := NewProdutoRepository(nil, testutils.TestLogger(t))
	assert.Equal(t, "UPDATE produto SET nome = $1, marca = $2, preco = $3, peso = $4 WHERE id = $5 RETURNING id, nome, marca, preco, peso", produtos.update)
}

func TestClienteRepository_GetAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClienteRepository(mock, testutils.TestLogger(t))

	t.Run("rows", func(t *testing.T) {
		mock.ExpectQuery(q(repo.selectAll)).WillReturnRows(
			pgxmock.NewRows(clienteColumns).
				AddRow(int64(1), "Ana", "a@x.com", "123", "Rua 1", "SP", "SP").
				AddRow(int64(2), "Bia", "b@x.com", "456", "Rua 2", "Rio", "RJ"),
		)

		clientes, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, clientes, 2)
		assert.Equal(t, domain.Cliente{ID: 1, Nome: "Ana", Email: "a@x.com", Telefone: "123", Endereco: "Rua 1", Cidade: "SP", UF: "SP"}, clientes[0])
		assert.Equal(t, "RJ", clientes[1].UF)
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery(q(repo.selectAll)).WillReturnRows(pgxmock.NewRows(clienteColumns))

		clientes, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, clientes)
		assert.Empty(t, clientes)
	})

	t.Run("database failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		mock.ExpectQuery(q(repo.selectAll)).WillReturnError(cause)

		_, err := repo.GetAll(context.Background())
		assert.ErrorIs(t, err, domain.ErrDatabase)
		assert.ErrorIs(t, err, cause)
	})
}

func TestClienteRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClienteRepository(mock, testutils.TestLogger(t))

	mock.ExpectQuery(q(repo.selectByID)).WithArgs(int64(7)).WillReturnRows(
		pgxmock.NewRows(clienteColumns).AddRow(int64(7), "Ana", "a@x.com", "123", "Rua 1", "SP", "SP"),
	)
	cliente, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cliente.ID)

	mock.ExpectQuery(q(repo.selectByID)).WithArgs(int64(999999)).WillReturnRows(pgxmock.NewRows(clienteColumns))
	_, err = repo.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrDatabase)
}

func TestClienteRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClienteRepository(mock, testutils.TestLogger(t))

	in := domain.ClienteInput{Nome: "Ana", Email: "a@x.com", Telefone: "123", Endereco: "Rua 1", Cidade: "SP", UF: "SP"}
	mock.ExpectQuery(q(repo.insert)).
		WithArgs("Ana", "a@x.com", "123", "Rua 1", "SP", "SP").
		WillReturnRows(pgxmock.NewRows(clienteColumns).AddRow(int64(42), "Ana", "a@x.com", "123", "Rua 1", "SP", "SP"))

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, in.Nome, created.Nome)
	assert.Equal(t, in.Email, created.Email)
	assert.Equal(t, in.UF, created.UF)
}

func TestClienteRepository_Update(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClienteRepository(mock, testutils.TestLogger(t))
	in := domain.ClienteInput{Nome: "Ana Maria", Email: "a@x.com", Telefone: "123", Endereco: "Rua 1", Cidade: "SP", UF: "SP"}

	mock.ExpectQuery(q(repo.update)).
		WithArgs("Ana Maria", "a@x.com", "123", "Rua 1", "SP", "SP", int64(1)).
		WillReturnRows(pgxmock.NewRows(clienteColumns).AddRow(int64(1), "Ana Maria", "a@x.com", "123", "Rua 1", "SP", "SP"))

	updated, err := repo.Update(context.Background(), 1, in)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Nome)

	mock.ExpectQuery(q(repo.update)).
		WithArgs("Ana Maria", "a@x.com", "123", "Rua 1", "SP", "SP", int64(5)).
		WillReturnRows(pgxmock.NewRows(clienteColumns))

	_, err = repo.Update(context.Background(), 5, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteRepository_DeleteTwice(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClienteRepository(mock, testutils.TestLogger(t))

	mock.ExpectQuery(q(repo.delete)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(clienteColumns).AddRow(int64(3), "Ana", "a@x.com", "123", "Rua 1", "SP", "SP"))
	mock.ExpectQuery(q(repo.delete)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(clienteColumns))

	deleted, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted.ID)

	_, err = repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProdutoRepository_CreateAndFailures(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProdutoRepository(mock, testutils.TestLogger(t))

	preco, peso := -3.5, 0.0
	in := domain.ProdutoInput{Nome: "Café", Marca: "Pilão", Preco: &preco, Peso: &peso}

	mock.ExpectQuery(q(repo.insert)).
		WithArgs("Café", "Pilão", -3.5, 0.0).
		WillReturnRows(pgxmock.NewRows(produtoColumns).AddRow(int64(10), "Café", "Pilão", -3.5, 0.0))

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.Produto{ID: 10, Nome: "Café", Marca: "Pilão", Preco: -3.5, Peso: 0}, created)

	mock.ExpectQuery(q(repo.delete)).WithArgs(int64(10)).WillReturnError(errors.New("timeout"))
	_, err = repo.Delete(context.Background(), 10)

	var dbErr *domain.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "delete", dbErr.Op)
	assert.Equal(t, "produto", dbErr.Table)
}

func TestCheckConnection(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec(q("SELECT 1")).WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, CheckConnection(context.Background(), mock))

	mock.ExpectExec(q("SELECT 1")).WillReturnError(errors.New("no route to host"))
	err := CheckConnection(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route to host")
}
