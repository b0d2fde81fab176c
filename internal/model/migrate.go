package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей платформы бронирования.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Building{},
		&Resource{},
		&Reservation{},
		&LoginCode{},
		&AccessRecord{},
	)
}
