package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/orderform"
	"ordermanager/internal/app/role"
)

// Методы для работы с заказами

const parameterBatchSize = 100

func orderedParameters(db *gorm.DB) *gorm.DB {
	return db.Order("parameter_in_orders.id")
}

// SubmitOrder проверяет присланные значения параметров и атомарно создаёт
// заказ вместе со всеми его значениями. Либо сохраняется всё, либо ничего.
func (r *Repository) SubmitOrder(ctx context.Context, authorID, serviceID uint, pairs []orderform.Pair) (*ds.Order, error) {
	var order ds.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author ds.User
		if err := tx.First(&author, authorID).Error; err != nil {
			return translateError(err, "пользователь %d", authorID)
		}
		if !role.FromFlags(author.IsStaff, author.IsSuperuser).IsCustomer() {
			return apperr.ErrPermissionDenied
		}

		var service ds.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			return translateError(err, "услуга %d", serviceID)
		}

		var schema []ds.ParameterInService
		if err := tx.Preload("Parameter").Where("service_id = ?", service.ID).Find(&schema).Error; err != nil {
			return err
		}

		rows, err := orderform.Validate(schema, pairs)
		if err != nil {
			return err
		}

		order = ds.Order{AuthorID: author.ID, ServiceID: service.ID}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return translateError(err, "заказ")
		}

		for i := range rows {
			rows[i].OrderID = order.ID
		}
		if len(rows) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(&rows, parameterBatchSize).Error; err != nil {
				return translateError(err, "параметры заказа %d", order.ID)
			}
		}

		order.Author = author
		order.Service = service
		order.Parameters = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// CompleteOrder отмечает заказ выполненным и запоминает исполнителя.
// Повторное выполнение ничего не меняет; второй результат сообщает,
// произошёл ли переход.
func (r *Repository) CompleteOrder(ctx context.Context, orderID, performerID uint) (*ds.Order, bool, error) {
	db := r.db.WithContext(ctx)

	var performer ds.User
	if err := db.First(&performer, performerID).Error; err != nil {
		return nil, false, translateError(err, "пользователь %d", performerID)
	}
	if !role.FromFlags(performer.IsStaff, performer.IsSuperuser).IsStaff() {
		return nil, false, apperr.ErrPermissionDenied
	}

	// условие complete = false не даёт перезаписать исполнителя
	result := db.Model(&ds.Order{}).
		Where("id = ? AND complete = ?", orderID, false).
		Updates(map[string]interface{}{
			"complete":     true,
			"performer_id": performer.ID,
		})
	if result.Error != nil {
		return nil, false, translateError(result.Error, "заказ %d", orderID)
	}

	order, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	return order, result.RowsAffected > 0, nil
}

// GetOrder возвращает заказ в любом состоянии вместе со значениями параметров
func (r *Repository) GetOrder(ctx context.Context, id uint) (*ds.Order, error) {
	var order ds.Order
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Author").
		Preload("Performer").
		Preload("Parameters", orderedParameters).
		Preload("Parameters.Parameter").
		First(&order, id).Error
	if err != nil {
		return nil, translateError(err, "заказ %d", id)
	}
	return &order, nil
}

// ListIncompleteOrders возвращает невыполненные заказы, старые первыми
func (r *Repository) ListIncompleteOrders(ctx context.Context) ([]ds.Order, error) {
	var orders []ds.Order
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Author").
		Preload("Parameters", orderedParameters).
		Preload("Parameters.Parameter").
		Where("complete = ?", false).
		Order("time_created, id").
		Find(&orders).Error
	return orders, err
}
