package ds

// ParameterType задает тип поля формы для параметра услуги
type ParameterType string

const (
	TypeCheckbox ParameterType = "checkbox"
	TypeText     ParameterType = "text"
	TypeNumber   ParameterType = "number"
	TypeEmail    ParameterType = "email"
	TypeDate     ParameterType = "date"
	TypeDatetime ParameterType = "datetime"
	TypeTime     ParameterType = "time"
)

// ParameterTypes перечисляет допустимые типы в порядке отображения
var ParameterTypes = []ParameterType{
	TypeCheckbox, TypeText, TypeNumber, TypeEmail, TypeDate, TypeDatetime, TypeTime,
}

// Valid проверяет, что тип входит в перечисление
func (t ParameterType) Valid() bool {
	for _, known := range ParameterTypes {
		if t == known {
			return true
		}
	}
	return false
}

// InputType возвращает значение атрибута type у HTML input
func (t ParameterType) InputType() string {
	if t == TypeDatetime {
		return "datetime-local"
	}
	return string(t)
}

const (
	TitleMaxLength = 200
	ValueMaxLength = 2000
)

// 1. Таблица параметров услуг
type Parameter struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"type:varchar(200);uniqueIndex;not null"`
}

// 3. Параметр, заданный для услуги, с типом поля формы
type ParameterInService struct {
	ID          uint          `gorm:"primaryKey"`
	ServiceID   uint          `gorm:"not null;uniqueIndex:idx_parameter_in_service"`
	ParameterID uint          `gorm:"not null;index;uniqueIndex:idx_parameter_in_service"`
	Type        ParameterType `gorm:"type:varchar(8);not null"`

	Service   Service   `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Parameter Parameter `gorm:"foreignKey:ParameterID;constraint:OnDelete:CASCADE"`
}

// 5. Значение параметра услуги в заказе
type ParameterInOrder struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"not null;uniqueIndex:idx_parameter_in_order"`
	ParameterID uint   `gorm:"not null;index;uniqueIndex:idx_parameter_in_order"`
	Value       string `gorm:"type:text;not null"`

	Parameter Parameter `gorm:"foreignKey:ParameterID;constraint:OnDelete:CASCADE"`
}
