package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
)

// Методы для работы с каталогом услуг и параметров

// CreateParameter добавляет параметр с уникальным наименованием
func (r *Repository) CreateParameter(ctx context.Context, title string) (*ds.Parameter, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	parameter := ds.Parameter{Title: title}
	if err := r.db.WithContext(ctx).Create(&parameter).Error; err != nil {
		return nil, translateError(err, "параметр %q", title)
	}
	return &parameter, nil
}

// RenameParameter меняет наименование, единственное изменяемое поле параметра
func (r *Repository) RenameParameter(ctx context.Context, id uint, title string) (*ds.Parameter, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	var parameter ds.Parameter
	if err := db.First(&parameter, id).Error; err != nil {
		return nil, translateError(err, "параметр %d", id)
	}
	if err := db.Model(&parameter).Update("title", title).Error; err != nil {
		return nil, translateError(err, "параметр %d", id)
	}
	return &parameter, nil
}

// ListParameters возвращает параметры по алфавиту
func (r *Repository) ListParameters(ctx context.Context) ([]ds.Parameter, error) {
	var parameters []ds.Parameter
	err := r.db.WithContext(ctx).Order("title").Find(&parameters).Error
	return parameters, err
}

// EnsureParameter находит параметр по наименованию или создаёт его
func (r *Repository) EnsureParameter(ctx context.Context, title string) (*ds.Parameter, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	var parameter ds.Parameter
	err = r.db.WithContext(ctx).Where(ds.Parameter{Title: title}).FirstOrCreate(&parameter).Error
	if err != nil {
		return nil, translateError(err, "параметр %q", title)
	}
	return &parameter, nil
}

// CreateService добавляет услугу с уникальным наименованием
func (r *Repository) CreateService(ctx context.Context, title string) (*ds.Service, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	service := ds.Service{Title: title}
	if err := r.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, translateError(err, "услуга %q", title)
	}
	return &service, nil
}

// EnsureService находит услугу по наименованию или создаёт её
func (r *Repository) EnsureService(ctx context.Context, title string) (*ds.Service, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	var service ds.Service
	err = r.db.WithContext(ctx).Where(ds.Service{Title: title}).FirstOrCreate(&service).Error
	if err != nil {
		return nil, translateError(err, "услуга %q", title)
	}
	return &service, nil
}

// GetService возвращает услугу вместе с её параметрами
func (r *Repository) GetService(ctx context.Context, id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.WithContext(ctx).
		Preload("Parameters.Parameter").
		First(&service, id).Error
	if err != nil {
		return nil, translateError(err, "услуга %d", id)
	}

	sortAssignments(service.Parameters)
	return &service, nil
}

// ListServices возвращает все услуги по алфавиту вместе с их параметрами
func (r *Repository) ListServices(ctx context.Context) ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.WithContext(ctx).
		Preload("Parameters.Parameter").
		Order("title").
		Find(&services).Error
	if err != nil {
		return nil, err
	}

	for i := range services {
		sortAssignments(services[i].Parameters)
	}
	return services, nil
}

// DeleteService удаляет услугу; связи с параметрами и заказы удаляются каскадно
func (r *Repository) DeleteService(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ds.Service{}, id)
	if result.Error != nil {
		return translateError(result.Error, "услуга %d", id)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("услуга %d", id)
	}
	return nil
}

// SetServiceImage сохраняет ключ изображения услуги (nil убирает изображение)
func (r *Repository) SetServiceImage(ctx context.Context, id uint, key *string) error {
	result := r.db.WithContext(ctx).Model(&ds.Service{}).Where("id = ?", id).Update("image_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("услуга %d", id)
	}
	return nil
}

// Методы для М-М связи услуг и параметров

// AssignParameter задаёт параметр для услуги с типом поля формы
func (r *Repository) AssignParameter(ctx context.Context, serviceID, parameterID uint, typ ds.ParameterType) (*ds.ParameterInService, error) {
	if !typ.Valid() {
		verr := apperr.NewValidationError()
		verr.AddField("type", "недопустимый тип поля")
		return nil, verr
	}

	var assigned ds.ParameterInService
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var service ds.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			return translateError(err, "услуга %d", serviceID)
		}
		var parameter ds.Parameter
		if err := tx.First(&parameter, parameterID).Error; err != nil {
			return translateError(err, "параметр %d", parameterID)
		}

		assigned = ds.ParameterInService{ServiceID: service.ID, ParameterID: parameter.ID, Type: typ}
		if err := tx.Omit(clause.Associations).Create(&assigned).Error; err != nil {
			return translateError(err, "параметр %d в услуге %d", parameterID, serviceID)
		}
		assigned.Service = service
		assigned.Parameter = parameter
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assigned, nil
}

// EnsureAssignment задаёт параметр для услуги или обновляет тип существующей связи
func (r *Repository) EnsureAssignment(ctx context.Context, serviceID, parameterID uint, typ ds.ParameterType) error {
	if !typ.Valid() {
		verr := apperr.NewValidationError()
		verr.AddField("type", "недопустимый тип поля")
		return verr
	}

	assigned := ds.ParameterInService{ServiceID: serviceID, ParameterID: parameterID, Type: typ}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_id"}, {Name: "parameter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type"}),
		}).
		Create(&assigned).Error
	return translateError(err, "параметр %d в услуге %d", parameterID, serviceID)
}

// UnassignParameter убирает параметр из услуги
func (r *Repository) UnassignParameter(ctx context.Context, serviceID, parameterID uint) error {
	result := r.db.WithContext(ctx).
		Where("service_id = ? AND parameter_id = ?", serviceID, parameterID).
		Delete(&ds.ParameterInService{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("параметр %d в услуге %d", parameterID, serviceID)
	}
	return nil
}

// sortAssignments упорядочивает параметры услуги по типу, затем по наименованию
func sortAssignments(assigned []ds.ParameterInService) {
	sort.SliceStable(assigned, func(i, j int) bool {
		if assigned[i].Type != assigned[j].Type {
			return assigned[i].Type < assigned[j].Type
		}
		return assigned[i].Parameter.Title < assigned[j].Parameter.Title
	})
}
