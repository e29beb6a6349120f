package ds

// 2. Таблица услуг
type Service struct {
	ID       uint    `gorm:"primaryKey"`
	Title    string  `gorm:"type:varchar(200);uniqueIndex;not null"`
	ImageKey *string `gorm:"type:varchar(255)"` // Nullable, ключ объекта в MinIO

	Parameters []ParameterInService `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}
