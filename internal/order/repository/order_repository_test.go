package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tillroll/internal/domain"
	"tillroll/internal/errors"
	"tillroll/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertTestOrder(t *testing.T, db *sql.DB, restaurantID int, orderNumber, status string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO order_management (restaurant_id, order_number, fulfillment_status, customer, items, order_note, tax, discount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		restaurantID, orderNumber, status,
		`{"name":"John Smith","phone":"07700900000","address":"4 Mill Lane"}`,
		`[{"name":"Burger","quantity":2,"unitPrice":12.99,"modifiers":["no onion"],"note":"cut in half"}]`,
		"ring bell twice", 2.00, 1.50,
	)
	require.NoError(t, err)
}

func TestOrderRepository_FindByNumber_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	insertTestOrder(t, db, 1, "1001", "pending")

	order, err := repo.FindByNumber(context.Background(), 1, "1001")
	require.NoError(t, err)
	assert.Equal(t, "1001", order.OrderNumber)
	assert.Equal(t, 1, order.RestaurantID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "John Smith", order.Customer.Name)
	assert.Equal(t, "4 Mill Lane", order.Customer.Address)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Burger", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, []string{"no onion"}, order.Items[0].Modifiers)
	assert.Equal(t, "cut in half", order.Items[0].Note)
	assert.Equal(t, "ring bell twice", order.Note)
	assert.Equal(t, 2.00, order.Tax)
	assert.Equal(t, 1.50, order.Discount)
	assert.Nil(t, order.AcceptedAt)
}

func TestOrderRepository_FindByNumber_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByNumber(context.Background(), 1, "9999")
	assert.Error(t, err)
	assert.Nil(t, order)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_FindByNumber_ScopedToRestaurant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	insertTestOrder(t, db, 1, "1001", "pending")

	_, err := repo.FindByNumber(context.Background(), 2, "1001")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok, "another restaurant's order number must not resolve")
}

func TestOrderRepository_ListByRestaurant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	insertTestOrder(t, db, 1, "1001", "pending")
	insertTestOrder(t, db, 1, "1002", "accepted")
	insertTestOrder(t, db, 2, "2001", "pending")

	orders, err := repo.ListByRestaurant(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	accepted, err := repo.ListByRestaurant(context.Background(), 1, domain.StatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "1002", accepted[0].OrderNumber)
}

func TestOrderRepository_SaveTransition(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	insertTestOrder(t, db, 1, "1001", "pending")

	order, err := repo.FindByNumber(context.Background(), 1, "1001")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	prep := 25
	order.Status = domain.StatusAccepted
	order.PrepTimeMinutes = &prep
	order.AcceptedAt = &now
	order.UpdatedAt = now

	require.NoError(t, repo.SaveTransition(context.Background(), order))

	reloaded, err := repo.FindByNumber(context.Background(), 1, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, reloaded.Status)
	require.NotNil(t, reloaded.PrepTimeMinutes)
	assert.Equal(t, 25, *reloaded.PrepTimeMinutes)
	require.NotNil(t, reloaded.AcceptedAt)
	assert.Equal(t, now, reloaded.AcceptedAt.UTC())
}

func TestOrderRepository_SaveTransition_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.SaveTransition(context.Background(), &domain.Order{
		RestaurantID: 1,
		OrderNumber:  "9999",
		Status:       domain.StatusAccepted,
	})

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_UpdatePrepTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	insertTestOrder(t, db, 1, "1001", "accepted")

	require.NoError(t, repo.UpdatePrepTime(context.Background(), 1, "1001", 40))

	order, err := repo.FindByNumber(context.Background(), 1, "1001")
	require.NoError(t, err)
	require.NotNil(t, order.PrepTimeMinutes)
	assert.Equal(t, 40, *order.PrepTimeMinutes)
}

func TestOrderRepository_UpdatePrepTime_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.UpdatePrepTime(context.Background(), 1, "9999", 40)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
