package ds

// 6. Таблица пользователей
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"type:varchar(150);unique;not null"`
	Password    string `gorm:"type:varchar(255);not null"` // bcrypt-хеш
	FullName    string `gorm:"type:varchar(150)"`
	IsStaff     bool   `gorm:"type:boolean;default:false;not null"`
	IsSuperuser bool   `gorm:"type:boolean;default:false;not null"`
}
