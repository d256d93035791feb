package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique;not null"`
	PasswordHash string
	Role         string
}
