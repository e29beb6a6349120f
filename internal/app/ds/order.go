package ds

import "time"

// 4. Таблица заказов
type Order struct {
	ID          uint      `gorm:"primaryKey"`
	AuthorID    uint      `gorm:"not null;index"`
	ServiceID   uint      `gorm:"not null;index"`
	TimeCreated time.Time `gorm:"<-:create;autoCreateTime;not null;index"` // задаётся один раз при создании
	Complete    bool      `gorm:"type:boolean;default:false;not null;index"`
	PerformerID *uint     `gorm:"default:null"` // заполняется только при выполнении

	Author     User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Service    Service            `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Performer  *User              `gorm:"foreignKey:PerformerID;constraint:OnDelete:SET NULL"`
	Parameters []ParameterInOrder `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
