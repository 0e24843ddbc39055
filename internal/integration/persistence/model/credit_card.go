package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	UserID      string          `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	ClosingDay  int             `gorm:"not null"`
	DueDay      int             `gorm:"not null"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		ClosingDay:  m.ClosingDay,
		DueDay:      m.DueDay,
		LimitAmount: m.LimitAmount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardFromEntity(card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:          card.ID,
		UserID:      card.UserID,
		Name:        card.Name,
		ClosingDay:  card.ClosingDay,
		DueDay:      card.DueDay,
		LimitAmount: card.LimitAmount,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}
