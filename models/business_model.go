package models

import "gorm.io/gorm"

type BusinessUnit struct {
	gorm.Model
	DbName    string `json:"db_name" gorm:"unique"`
	CreatedBy int
}
