package services

import (
	"fmt"

	"gorm.io/gorm"

	"surfquest/server/internal/models"
)

// ConditionService manages the monthly condition records, one per
// (surf zone, month).
type ConditionService struct {
	db *gorm.DB
}

func NewConditionService(db *gorm.DB) *ConditionService {
	return &ConditionService{db: db}
}

// ListConditions returns all condition rows ordered by zone then month.
func (s *ConditionService) ListConditions() ([]models.Condition, error) {
	var conditions []models.Condition
	if err := s.db.Order("surfzone_id, month").Find(&conditions).Error; err != nil {
		return nil, fmt.Errorf("listing conditions: %w", err)
	}
	return conditions, nil
}

func (s *ConditionService) GetCondition(id string) (*models.Condition, error) {
	var condition models.Condition
	if err := s.db.First(&condition, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &condition, nil
}

// CreateCondition validates every bounded metric, derives the slug from the
// owning zone's name, and inserts. A second record for the same (zone, month)
// is a conflict: the pre-check catches it politely, the unique index catches
// the concurrent case.
func (s *ConditionService) CreateCondition(condition *models.Condition) error {
	if condition.SurfZoneID == "" {
		return newValidationError("surfzone_id", "required")
	}
	if problems := condition.ValidateRanges(); len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}

	var zone models.SurfZone
	if err := s.db.First(&zone, "id = ?", condition.SurfZoneID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return newValidationError("surfzone_id", "surf zone does not exist")
		}
		return fmt.Errorf("checking surf zone: %w", err)
	}

	var count int64
	s.db.Model(&models.Condition{}).
		Where("surfzone_id = ? AND month = ?", condition.SurfZoneID, condition.Month).
		Count(&count)
	if count > 0 {
		return fmt.Errorf("%w: conditions for %s in %s already exist", ErrConflict, zone.Name, condition.Month)
	}

	condition.SetSlug(zone.Name)
	if err := s.db.Create(condition).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}
