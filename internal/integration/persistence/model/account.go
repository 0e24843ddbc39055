package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID             string          `gorm:"type:uuid;primaryKey"`
	UserID         string          `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Type           string          `gorm:"type:varchar(20);not null"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           entity.AccountType(m.Type),
		OpeningBalance: m.OpeningBalance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		Name:           account.Name,
		Type:           string(account.Type),
		OpeningBalance: account.OpeningBalance,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}
