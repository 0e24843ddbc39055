package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
	"github.com/gestor-app/backend/internal/integration/persistence/model"
)

// creditCardRepository implements the adapter.CreditCardRepository interface.
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository instance.
func NewCreditCardRepository(db *gorm.DB) adapter.CreditCardRepository {
	return &creditCardRepository{db: db}
}

// Create creates a new credit card in the database.
func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(card)
	return r.db.WithContext(ctx).Create(cardModel).Error
}

// FindByID retrieves a credit card owned by the user.
func (r *creditCardRepository) FindByID(ctx context.Context, id, userID string) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCreditCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindByUser retrieves all credit cards for a given user.
func (r *creditCardRepository) FindByUser(ctx context.Context, userID string) ([]*entity.CreditCard, error) {
	var cardModels []model.CreditCardModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i := range cardModels {
		cards[i] = cardModels[i].ToEntity()
	}
	return cards, nil
}

// Update updates an existing credit card.
func (r *creditCardRepository) Update(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(card)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", card.ID, card.UserID).
		Save(cardModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCreditCardNotFound
	}
	return nil
}

// Delete removes a credit card owned by the user. Transactions that reference
// the card are kept; the ledger passes them through untouched.
func (r *creditCardRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CreditCardModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCreditCardNotFound
	}
	return nil
}
