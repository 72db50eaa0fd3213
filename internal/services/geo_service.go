package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"surfquest/server/internal/models"
)

// GeoService manages the fixed containment chain Continent > Country.
type GeoService struct {
	db *gorm.DB
}

func NewGeoService(db *gorm.DB) *GeoService {
	return &GeoService{db: db}
}

// ListContinents returns all continents ordered alphabetically.
func (s *GeoService) ListContinents() ([]models.Continent, error) {
	var continents []models.Continent
	if err := s.db.Order("name").Find(&continents).Error; err != nil {
		return nil, fmt.Errorf("listing continents: %w", err)
	}
	return continents, nil
}

func (s *GeoService) GetContinent(id string) (*models.Continent, error) {
	var continent models.Continent
	if err := s.db.Preload("Countries", func(db *gorm.DB) *gorm.DB {
		return db.Order("countries.name")
	}).First(&continent, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &continent, nil
}

// CreateContinent inserts a continent. The (name, code) unique index is the
// final arbiter; a pre-check still gives the common case a clean message.
func (s *GeoService) CreateContinent(continent *models.Continent) error {
	if continent.Name == "" {
		return newValidationError("name", "required")
	}
	if len(continent.Code) != 2 {
		return newValidationError("code", "must be a 2-letter ISO code")
	}
	continent.Code = strings.ToUpper(continent.Code)

	var count int64
	s.db.Model(&models.Continent{}).
		Where("name = ? AND code = ?", continent.Name, continent.Code).
		Count(&count)
	if count > 0 {
		return fmt.Errorf("%w: continent %q already exists", ErrConflict, continent.Name)
	}

	if err := s.db.Create(continent).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// ListCountries returns all countries ordered alphabetically.
func (s *GeoService) ListCountries() ([]models.Country, error) {
	var countries []models.Country
	if err := s.db.Preload("Continent").Order("name").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("listing countries: %w", err)
	}
	return countries, nil
}

func (s *GeoService) GetCountry(id string) (*models.Country, error) {
	var country models.Country
	if err := s.db.Preload("Continent").First(&country, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &country, nil
}

// CreateCountry inserts a country under an existing continent. Country names
// are unique per continent, not globally.
func (s *GeoService) CreateCountry(country *models.Country) error {
	if country.Name == "" {
		return newValidationError("name", "required")
	}
	if len(country.Code) != 3 {
		return newValidationError("code", "must be a 3-letter ISO code")
	}
	if country.ContinentID == "" {
		return newValidationError("continent_id", "required")
	}
	country.Code = strings.ToUpper(country.Code)

	var continent models.Continent
	if err := s.db.First(&continent, "id = ?", country.ContinentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return newValidationError("continent_id", "continent does not exist")
		}
		return fmt.Errorf("checking continent: %w", err)
	}

	var count int64
	s.db.Model(&models.Country{}).
		Where("name = ? AND continent_id = ?", country.Name, country.ContinentID).
		Count(&count)
	if count > 0 {
		return fmt.Errorf("%w: country %q already exists on this continent", ErrConflict, country.Name)
	}

	if err := s.db.Create(country).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}
