// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           string          `gorm:"type:uuid;primaryKey"`
	UserID       string          `gorm:"type:uuid;not null;index"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	IsPaid       bool            `gorm:"default:false"`
	AccountID    string          `gorm:"type:uuid;index"`
	CreditCardID string          `gorm:"type:uuid;index"`
	CategoryID   string          `gorm:"type:uuid;index"`
	ContactID    string          `gorm:"type:uuid"`
	OriginType   string          `gorm:"type:varchar(20);default:'manual'"`
	OriginID     string          `gorm:"type:uuid"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User       *UserModel       `gorm:"foreignKey:UserID;references:ID"`
	CreditCard *CreditCardModel `gorm:"foreignKey:CreditCardID;references:ID"`
	Category   *CategoryModel   `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Description:  m.Description,
		Amount:       m.Amount,
		Type:         entity.TransactionType(m.Type),
		Date:         m.Date,
		IsPaid:       m.IsPaid,
		AccountID:    m.AccountID,
		CreditCardID: m.CreditCardID,
		CategoryID:   m.CategoryID,
		ContactID:    m.ContactID,
		OriginType:   entity.OriginType(m.OriginType),
		OriginID:     m.OriginID,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		Description:  transaction.Description,
		Amount:       transaction.Amount,
		Type:         string(transaction.Type),
		Date:         transaction.Date,
		IsPaid:       transaction.IsPaid,
		AccountID:    transaction.AccountID,
		CreditCardID: transaction.CreditCardID,
		CategoryID:   transaction.CategoryID,
		ContactID:    transaction.ContactID,
		OriginType:   string(transaction.OriginType),
		OriginID:     transaction.OriginID,
		Notes:        transaction.Notes,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
