package services

import (
	"testing"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		NewShopService(repository.NewShopRepository(db)),
	)
}

func TestOrderCreateSnapshotsMenu(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := seedVendor(t, db, entity.RoleOwner, nil)
	shop := seedShop(t, db, owner.ID, nil)

	dosa := &entity.MenuItem{ShopID: shop.ID, Name: "Dosa", Price: 150, Available: true}
	require.NoError(t, db.Create(dosa).Error)
	offMenu := &entity.MenuItem{ShopID: shop.ID, Name: "Gone", Price: 100, Available: false}
	require.NoError(t, db.Create(offMenu).Error)

	u := seedUser(t, db, "dana")

	order, err := svc.Create(&u.ID, CreateOrderInput{
		ShopID:      shop.ID,
		TableNumber: "3",
		Items:       []OrderItemInput{{MenuItemID: dosa.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300), order.TotalAmount)
	assert.Equal(t, entity.OrderPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Dosa", order.Items[0].Name)
	assert.Equal(t, int64(150), order.Items[0].UnitPrice)

	// later menu edits must not touch the snapshot
	require.NoError(t, db.Model(dosa).Update("price", 999).Error)
	got, err := svc.GetForUser(order.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got.Items[0].UnitPrice)

	t.Run("unavailable items are rejected", func(t *testing.T) {
		_, err := svc.Create(&u.ID, CreateOrderInput{
			ShopID: shop.ID,
			Items:  []OrderItemInput{{MenuItemID: offMenu.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("guest order carries no user", func(t *testing.T) {
		guest, err := svc.Create(nil, CreateOrderInput{
			ShopID: shop.ID,
			Items:  []OrderItemInput{{MenuItemID: dosa.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		assert.Nil(t, guest.UserID)
	})
}

func TestOrderTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := seedVendor(t, db, entity.RoleOwner, nil)
	other := seedVendor(t, db, entity.RoleOwner, nil)
	shop := seedShop(t, db, owner.ID, nil)
	u := seedUser(t, db, "erin")

	order := seedOrder(t, db, shop.ID, &u.ID, entity.OrderPending)

	t.Run("only an authorized vendor may act", func(t *testing.T) {
		_, err := svc.Accept(other, order.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("happy path runs the whole ladder", func(t *testing.T) {
		o, err := svc.Accept(owner, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderPreparing, o.Status)

		o, err = svc.Ready(owner, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderReady, o.Status)

		o, err = svc.Complete(owner, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCompleted, o.Status)
	})

	t.Run("stale transition conflicts", func(t *testing.T) {
		_, err := svc.Accept(owner, order.ID) // already completed
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancel only from pending", func(t *testing.T) {
		fresh := seedOrder(t, db, shop.ID, &u.ID, entity.OrderPending)
		o, err := svc.Cancel(owner, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, o.Status)

		_, err = svc.Cancel(owner, order.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := svc.Accept(owner, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTableServiceDeleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	tables := NewTableService(repository.NewTableRepository(db))

	owner := seedVendor(t, db, entity.RoleOwner, nil)
	shop := seedShop(t, db, owner.ID, nil)

	created, err := tables.Create(shop.ID, []TableInput{
		{TableNumber: "1", QRIdentifier: "qrA"},
		{TableNumber: "2", QRIdentifier: "qrB"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	require.NoError(t, tables.Delete(shop.ID, "qrA"))
	// deleting again is not an error
	require.NoError(t, tables.Delete(shop.ID, "qrA"))

	rest, err := tables.List(shop.ID)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "qrB", rest[0].QRIdentifier)
}
