package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/orderform"
	"ordermanager/internal/app/repository/repotest"
)

func haircutPairs() []orderform.Pair {
	return []orderform.Pair{
		{Title: "Length", Value: "short"},
		{Title: "Date", Value: "2024-01-01"},
	}
}

func parameterIDs(rows []ds.ParameterInOrder) []uint {
	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.ParameterID
	}
	return ids
}

func TestSubmitOrderHaircut(t *testing.T) {
	repo, db := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	service := repotest.Haircut(t, repo)

	order, err := repo.SubmitOrder(ctx, customer.ID, service.ID, haircutPairs())
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, customer.ID, order.AuthorID)
	assert.Equal(t, service.ID, order.ServiceID)
	assert.False(t, order.Complete)
	assert.Nil(t, order.PerformerID)
	assert.False(t, order.TimeCreated.IsZero())
	require.Len(t, order.Parameters, 2)

	assert.EqualValues(t, 1, repotest.Count(t, db, &ds.Order{}))
	assert.EqualValues(t, 2, repotest.Count(t, db, &ds.ParameterInOrder{}))

	stored, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", stored.Service.Title)
	require.Len(t, stored.Parameters, 2)
	assert.Equal(t, "Length", stored.Parameters[0].Parameter.Title)
	assert.Equal(t, "short", stored.Parameters[0].Value)
	assert.Equal(t, "Date", stored.Parameters[1].Parameter.Title)
	assert.Equal(t, "2024-01-01", stored.Parameters[1].Value)
}

func TestSubmitOrderParameterSetMatchesService(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	service := repotest.Service(t, repo, "Delivery",
		repotest.Field{Title: "Address", Type: ds.TypeText},
		repotest.Field{Title: "Email", Type: ds.TypeEmail},
		repotest.Field{Title: "Fragile", Type: ds.TypeCheckbox},
		repotest.Field{Title: "Boxes", Type: ds.TypeNumber},
	)

	order, err := repo.SubmitOrder(ctx, customer.ID, service.ID, []orderform.Pair{
		{Title: "Boxes", Value: "3"},
		{Title: "Fragile", Value: "on"},
		{Title: "Email", Value: "client@example.com"},
		{Title: "Address", Value: "Main st. 1"},
	})
	require.NoError(t, err)

	expected := make([]uint, 0, len(service.Parameters))
	for _, assigned := range service.Parameters {
		expected = append(expected, assigned.ParameterID)
	}
	assert.ElementsMatch(t, expected, parameterIDs(order.Parameters))
}

func TestSubmitOrderRejectsWithoutWrites(t *testing.T) {
	tests := []struct {
		name  string
		pairs []orderform.Pair
		field string
	}{
		{
			name:  "missing parameter",
			pairs: []orderform.Pair{{Title: "Length", Value: "short"}},
			field: "Date",
		},
		{
			name: "unknown parameter",
			pairs: []orderform.Pair{
				{Title: "Length", Value: "short"},
				{Title: "Date", Value: "2024-01-01"},
				{Title: "Size", Value: "XL"},
			},
			field: "Size",
		},
		{
			name: "duplicate parameter",
			pairs: []orderform.Pair{
				{Title: "Length", Value: "short"},
				{Title: "Length", Value: "long"},
				{Title: "Date", Value: "2024-01-01"},
			},
			field: "Length",
		},
		{
			name: "blank value",
			pairs: []orderform.Pair{
				{Title: "Length", Value: ""},
				{Title: "Date", Value: "2024-01-01"},
			},
			field: "Length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db := repotest.New(t)
			customer := repotest.Customer(t, repo, "customer")
			service := repotest.Haircut(t, repo)

			_, err := repo.SubmitOrder(context.Background(), customer.ID, service.ID, tt.pairs)
			require.ErrorIs(t, err, apperr.ErrValidation)

			verr, ok := apperr.AsValidation(err)
			require.True(t, ok)
			assert.Contains(t, verr.Fields, tt.field)

			assert.Zero(t, repotest.Count(t, db, &ds.Order{}))
			assert.Zero(t, repotest.Count(t, db, &ds.ParameterInOrder{}))
		})
	}
}

func TestSubmitOrderUnknownService(t *testing.T) {
	repo, db := repotest.New(t)
	customer := repotest.Customer(t, repo, "customer")

	_, err := repo.SubmitOrder(context.Background(), customer.ID, 404, haircutPairs())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Zero(t, repotest.Count(t, db, &ds.Order{}))
}

func TestSubmitOrderStaffAuthorDenied(t *testing.T) {
	repo, db := repotest.New(t)
	staff := repotest.Staff(t, repo, "staff")
	service := repotest.Haircut(t, repo)

	_, err := repo.SubmitOrder(context.Background(), staff.ID, service.ID, haircutPairs())
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
	assert.Zero(t, repotest.Count(t, db, &ds.Order{}))
}

func TestSubmitOrderSuperuserAllowed(t *testing.T) {
	repo, _ := repotest.New(t)
	admin := repotest.Superuser(t, repo, "admin")
	service := repotest.Haircut(t, repo)

	_, err := repo.SubmitOrder(context.Background(), admin.ID, service.ID, haircutPairs())
	assert.NoError(t, err)
}

func TestSubmitOrderRollsBackOnParameterInsertFailure(t *testing.T) {
	repo, db := repotest.New(t)
	customer := repotest.Customer(t, repo, "customer")
	service := repotest.Haircut(t, repo)

	errDiskFull := errors.New("disk full")
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_parameters", func(tx *gorm.DB) {
		if tx.Statement.Table == "parameter_in_orders" {
			_ = tx.AddError(errDiskFull)
		}
	})
	require.NoError(t, err)

	_, err = repo.SubmitOrder(context.Background(), customer.ID, service.ID, haircutPairs())
	require.ErrorIs(t, err, errDiskFull)

	assert.Zero(t, repotest.Count(t, db, &ds.Order{}), "order must not outlive its parameters")
	assert.Zero(t, repotest.Count(t, db, &ds.ParameterInOrder{}))
}

func TestParameterInOrderUniqueConstraint(t *testing.T) {
	repo, db := repotest.New(t)
	customer := repotest.Customer(t, repo, "customer")
	service := repotest.Haircut(t, repo)

	order, err := repo.SubmitOrder(context.Background(), customer.ID, service.ID, haircutPairs())
	require.NoError(t, err)

	duplicate := ds.ParameterInOrder{
		OrderID:     order.ID,
		ParameterID: order.Parameters[0].ParameterID,
		Value:       "again",
	}
	err = db.Omit("Parameter").Create(&duplicate).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCompleteOrder(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	staff := repotest.Staff(t, repo, "staff")
	service := repotest.Haircut(t, repo)

	order, err := repo.SubmitOrder(ctx, customer.ID, service.ID, haircutPairs())
	require.NoError(t, err)

	incomplete, err := repo.ListIncompleteOrders(ctx)
	require.NoError(t, err)
	require.Len(t, incomplete, 1)

	completed, changed, err := repo.CompleteOrder(ctx, order.ID, staff.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, completed.Complete)
	require.NotNil(t, completed.PerformerID)
	assert.Equal(t, staff.ID, *completed.PerformerID)
	require.NotNil(t, completed.Performer)
	assert.Equal(t, "staff", completed.Performer.Username)

	incomplete, err = repo.ListIncompleteOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, incomplete)
}

func TestCompleteOrderIsIdempotent(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	first := repotest.Staff(t, repo, "first")
	second := repotest.Staff(t, repo, "second")
	service := repotest.Haircut(t, repo)

	order, err := repo.SubmitOrder(ctx, customer.ID, service.ID, haircutPairs())
	require.NoError(t, err)

	done, changed, err := repo.CompleteOrder(ctx, order.ID, first.ID)
	require.NoError(t, err)
	require.True(t, changed)

	again, changed, err := repo.CompleteOrder(ctx, order.ID, second.ID)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, again.Complete)
	require.NotNil(t, again.PerformerID)
	assert.Equal(t, first.ID, *again.PerformerID)
	assert.True(t, done.TimeCreated.Equal(again.TimeCreated))
}

func TestCompleteOrderErrors(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	staff := repotest.Staff(t, repo, "staff")
	service := repotest.Haircut(t, repo)

	_, _, err := repo.CompleteOrder(ctx, 404, staff.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	order, err := repo.SubmitOrder(ctx, customer.ID, service.ID, haircutPairs())
	require.NoError(t, err)

	_, _, err = repo.CompleteOrder(ctx, order.ID, customer.ID)
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)

	stored, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, stored.Complete)
}

func TestListIncompleteOrdersOrdering(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	staff := repotest.Staff(t, repo, "staff")
	service := repotest.Haircut(t, repo)

	var ids []uint
	for i := 0; i < 3; i++ {
		order, err := repo.SubmitOrder(ctx, customer.ID, service.ID, haircutPairs())
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}
	_, _, err := repo.CompleteOrder(ctx, ids[1], staff.ID)
	require.NoError(t, err)

	orders, err := repo.ListIncompleteOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, ids[0], orders[0].ID)
	assert.Equal(t, ids[2], orders[1].ID)
	for _, order := range orders {
		assert.Equal(t, "Haircut", order.Service.Title)
		assert.Len(t, order.Parameters, 2)
	}
}

func TestOrderCascades(t *testing.T) {
	repo, db := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	service := repotest.Haircut(t, repo)

	_, err := repo.SubmitOrder(ctx, customer.ID, service.ID, haircutPairs())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteService(ctx, service.ID))

	assert.Zero(t, repotest.Count(t, db, &ds.Order{}))
	assert.Zero(t, repotest.Count(t, db, &ds.ParameterInOrder{}))
	assert.Zero(t, repotest.Count(t, db, &ds.ParameterInService{}))
	assert.EqualValues(t, 2, repotest.Count(t, db, &ds.Parameter{}))
}

func TestParameterDeletionCascades(t *testing.T) {
	repo, db := repotest.New(t)
	ctx := context.Background()
	customer := repotest.Customer(t, repo, "customer")
	service := repotest.Haircut(t, repo)

	order, err := repo.SubmitOrder(ctx, customer.ID, service.ID, haircutPairs())
	require.NoError(t, err)

	require.NoError(t, db.Delete(&ds.Parameter{}, order.Parameters[0].ParameterID).Error)

	assert.EqualValues(t, 1, repotest.Count(t, db, &ds.ParameterInOrder{}))
	assert.EqualValues(t, 1, repotest.Count(t, db, &ds.ParameterInService{}))
	assert.EqualValues(t, 1, repotest.Count(t, db, &ds.Order{}))
}
