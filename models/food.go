package models

import "gorm.io/gorm"

// A catalog entry for every food resolved through Nutritionix
type FoodItem struct {
	gorm.Model
	Query    string `gorm:"type:varchar(255);index;not null"` // what the user asked for
	Label    string `gorm:"not null"`                         // resolved display name
	Calories float64
	Lookups  uint `gorm:"default:1"` // how many times this food was analyzed
}
