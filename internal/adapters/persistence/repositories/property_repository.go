package repositories

import (
	"context"

	"rentmate/internal/adapters/persistence/models"
	"rentmate/internal/core/billing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PropertyRepository handles occupancy data access
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new occupancy record
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// GetByID gets an occupancy by document id
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error
	return &property, err
}

// List returns the full occupancy collection snapshot
func (r *PropertyRepository) List(ctx context.Context) ([]*models.Property, error) {
	var properties []*models.Property
	err := r.db.WithContext(ctx).
		Order("room_no ASC").
		Find(&properties).Error
	return properties, err
}

// Update saves the whole occupancy record (last write wins)
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

// Delete soft deletes an occupancy record
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id).Error
}

// ApplyBillingUpdate applies a payment-status transition to one occupancy
// document: the month's history entry and committed total are written
// together in a single transaction, so no reader ever observes one without
// the other. PaymentNone clears both.
func (r *PropertyRepository) ApplyBillingUpdate(ctx context.Context, id string, update billing.BillingUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&property, "id = ?", id).Error; err != nil {
			return err
		}

		if property.PaymentHistory == nil {
			property.PaymentHistory = models.StatusMap{}
		}
		if property.PaymentTotals == nil {
			property.PaymentTotals = models.TotalMap{}
		}

		if update.Status == models.PaymentNone {
			delete(property.PaymentHistory, update.MonthKey)
			delete(property.PaymentTotals, update.MonthKey)
		} else {
			property.PaymentHistory[update.MonthKey] = update.Status
			if update.Total != nil {
				property.PaymentTotals[update.MonthKey] = *update.Total
			} else {
				delete(property.PaymentTotals, update.MonthKey)
			}
		}

		return tx.Model(&property).
			Select("PaymentHistory", "PaymentTotals").
			Updates(&property).Error
	})
}

// ApplyWaterUpdate records or clears one month's meter reading and reset
// flag on an occupancy document, atomically.
func (r *PropertyRepository) ApplyWaterUpdate(ctx context.Context, id string, update billing.WaterUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&property, "id = ?", id).Error; err != nil {
			return err
		}

		if property.WaterReadings == nil {
			property.WaterReadings = models.ReadingMap{}
		}
		if property.WaterMeterReset == nil {
			property.WaterMeterReset = models.ResetMap{}
		}

		if update.Reading != nil {
			property.WaterReadings[update.MonthKey] = *update.Reading
		} else {
			delete(property.WaterReadings, update.MonthKey)
		}
		if update.MeterReset != nil {
			if *update.MeterReset {
				property.WaterMeterReset[update.MonthKey] = true
			} else {
				delete(property.WaterMeterReset, update.MonthKey)
			}
		}

		return tx.Model(&property).
			Select("WaterReadings", "WaterMeterReset").
			Updates(&property).Error
	})
}
