package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/storage/memory"
)

func TestSeededUsersAuthenticate(t *testing.T) {
	store := memory.New()

	manager, err := store.Users().FindByEmail("grace@woodcraft.ug")
	require.NoError(t, err)
	require.NotNil(t, manager)
	assert.Equal(t, entity.RoleManager, manager.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte("manager123")))

	attendant, err := store.Users().FindByEmail("peter@woodcraft.ug")
	require.NoError(t, err)
	require.NotNil(t, attendant)
	assert.Equal(t, entity.RoleAttendant, attendant.Role)
}

func TestLookupMissReturnsNilNil(t *testing.T) {
	store := memory.New()

	p, err := store.Products().GetByID("no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, p)

	u, err := store.Users().FindByEmail("nobody@woodcraft.ug")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestReadsReturnClones(t *testing.T) {
	store := memory.New()

	p, err := store.Products().GetByID("prod-001")
	require.NoError(t, err)
	require.NotNil(t, p)

	p.StockQuantity = 999
	p.Price = decimal.NewFromInt(1)

	again, err := store.Products().GetByID("prod-001")
	require.NoError(t, err)
	assert.Equal(t, 4, again.StockQuantity, "mutating a read result must not touch the store")
	assert.True(t, decimal.NewFromInt(850000).Equal(again.Price))
}

func TestProductUpdatePersistsForProcessLifetime(t *testing.T) {
	store := memory.New()

	p, err := store.Products().GetByID("prod-003")
	require.NoError(t, err)
	p.StockQuantity = 9
	require.NoError(t, store.Products().Update(p))

	again, err := store.Products().GetByID("prod-003")
	require.NoError(t, err)
	assert.Equal(t, 9, again.StockQuantity)
}

func TestSalesListKeepsInsertionOrder(t *testing.T) {
	store := memory.New()

	sale := &entity.Sale{
		ID: "sale-new", CustomerName: "Walk-in",
		Subtotal: decimal.NewFromInt(85000), Total: decimal.NewFromInt(85000),
		Status: entity.SaleStatusCompleted,
	}
	require.NoError(t, store.Sales().Create(sale))

	all, err := store.Sales().List()
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "sale-001", all[0].ID)
	assert.Equal(t, "sale-new", all[5].ID, "new sales append to the end")
}

func TestCustomerGetByPhone(t *testing.T) {
	store := memory.New()

	c, err := store.Customers().GetByPhone("+256 701 882 340")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "James Mugisha", c.Name)
}

func TestCustomerDelete(t *testing.T) {
	store := memory.New()

	require.NoError(t, store.Customers().Delete("cust-004"))
	c, err := store.Customers().GetByID("cust-004")
	assert.NoError(t, err)
	assert.Nil(t, c)
}
