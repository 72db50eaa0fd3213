package services

import (
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"surfquest/server/internal/models"
)

// testDB opens the database named by TEST_DATABASE_URL, migrates the schema
// and truncates all tables. Tests that need Postgres skip when it is unset.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	for _, table := range []string{
		"reviews", "surf_spot_images", "surf_zone_images", "conditions",
		"surf_spots", "surf_zones", "countries", "continents", "users",
	} {
		require.NoError(t, db.Exec("TRUNCATE TABLE "+table+" CASCADE").Error)
	}
	return db
}

// seedZone creates a continent, country and zone for tests to hang data off.
func seedZone(t *testing.T, db *gorm.DB, zoneName string) *models.SurfZone {
	t.Helper()

	geo := NewGeoService(db)
	continent := &models.Continent{Name: "Europe " + zoneName, Code: "E" + string(zoneName[0])}
	require.NoError(t, geo.CreateContinent(continent))

	country := &models.Country{Name: "France " + zoneName, Code: "F" + string(zoneName[0]) + "A", ContinentID: continent.ID}
	require.NoError(t, geo.CreateCountry(country))

	zones := NewSurfZoneService(db)
	zone := &models.SurfZone{Name: zoneName, CountryID: country.ID}
	require.NoError(t, zones.CreateZone(zone))
	return zone
}

func TestCreateConditionUniquePerZoneMonth(t *testing.T) {
	db := testDB(t)
	zone := seedZone(t, db, "Hossegor")
	svc := NewConditionService(db)

	first := &models.Condition{SurfZoneID: zone.ID, Month: "July"}
	require.NoError(t, svc.CreateCondition(first))
	assert.Equal(t, "hossegor-july", first.Slug)

	dup := &models.Condition{SurfZoneID: zone.ID, Month: "July"}
	err := svc.CreateCondition(dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	otherMonth := &models.Condition{SurfZoneID: zone.ID, Month: "August"}
	assert.NoError(t, svc.CreateCondition(otherMonth))
}

func TestZoneSlugIdempotentAcrossUpdates(t *testing.T) {
	db := testDB(t)
	zone := seedZone(t, db, "North Shore")
	require.Equal(t, "north-shore", zone.Slug)

	zone.Name = "North Shore Oahu"
	require.NoError(t, db.Save(zone).Error)

	var reloaded models.SurfZone
	require.NoError(t, db.First(&reloaded, "id = ?", zone.ID).Error)
	assert.Equal(t, "north-shore", reloaded.Slug)
}

func TestListZonesLiteByCountryCode(t *testing.T) {
	db := testDB(t)
	zoneFR := seedZone(t, db, "Hossegor")
	seedZone(t, db, "Uluwatu")
	svc := NewSurfZoneService(db)

	f, err := ParseZoneFilters(url.Values{"country_code": {"FHA"}})
	require.NoError(t, err)

	zones, err := svc.ListZonesLite(f)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, zoneFR.ID, zones[0].ID)
}

func TestListZonesLiteConditionFilterDeduplicates(t *testing.T) {
	db := testDB(t)
	zone := seedZone(t, db, "Taghazout")
	conditions := NewConditionService(db)

	// Two condition rows both matching the filter must not duplicate the zone.
	for _, month := range []string{"July", "August"} {
		c := &models.Condition{SurfZoneID: zone.ID, Month: month, SunnyDays: intp(25)}
		require.NoError(t, conditions.CreateCondition(c))
	}

	svc := NewSurfZoneService(db)
	min := 20
	zones, err := svc.ListZonesLite(&ZoneFilters{SunnyDaysMin: &min})
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, zone.ID, zones[0].ID)
}

func TestListSpotsLiteSwellSizeRangeInclusive(t *testing.T) {
	db := testDB(t)
	zone := seedZone(t, db, "Hossegor")
	svc := NewSurfSpotService(db)

	sizes := map[string]float64{
		"Inside Bank": 0.5,
		"Main Peak":   1.0,
		"The Wall":    1.5,
		"Outer Bank":  2.0,
		"Bombie":      2.5,
	}
	for name, size := range sizes {
		s := size
		spot := &models.SurfSpot{Name: name, SurfZoneID: zone.ID, BestSwellSizeMeter: &s}
		require.NoError(t, svc.CreateSpot(spot))
	}

	min, max := 1.0, 2.0
	spots, err := svc.ListSpotsLite(&SpotFilters{BestSwellSizeMeterMin: &min, BestSwellSizeMeterMax: &max})
	require.NoError(t, err)

	names := make([]string, 0, len(spots))
	for _, s := range spots {
		names = append(names, s.Name)
	}
	// Both boundary values are in range.
	assert.ElementsMatch(t, []string{"Main Peak", "The Wall", "Outer Bank"}, names)
}

func TestListSpotsLiteByZoneSlug(t *testing.T) {
	db := testDB(t)
	zoneFR := seedZone(t, db, "Hossegor")
	zoneBali := seedZone(t, db, "Uluwatu")
	svc := NewSurfSpotService(db)

	require.NoError(t, svc.CreateSpot(&models.SurfSpot{Name: "La Graviere", SurfZoneID: zoneFR.ID}))
	require.NoError(t, svc.CreateSpot(&models.SurfSpot{Name: "Racetracks", SurfZoneID: zoneBali.ID}))

	f, err := ParseSpotFilters(url.Values{"surfzone_slug": {"hossegor"}})
	require.NoError(t, err)

	spots, err := svc.ListSpotsLite(f)
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, "La Graviere", spots[0].Name)
}

func TestReviewDuplicateAndSelfUpdate(t *testing.T) {
	db := testDB(t)
	zone := seedZone(t, db, "Hossegor")
	users := NewUserService(db)
	reviews := NewReviewService(db)

	user, err := users.Register(&RegisterInput{Username: "kelly", Password: "surf4life"})
	require.NoError(t, err)

	review, err := reviews.CreateReview(user.ID, &ReviewInput{SurfZone: &zone.ID, Rating: 5, Comment: "epic"})
	require.NoError(t, err)

	_, err = reviews.CreateReview(user.ID, &ReviewInput{SurfZone: &zone.ID, Rating: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// Updating the review keeps the same target without tripping the
	// duplicate check.
	updated, err := reviews.UpdateUserReview(user.ID, review.ID, &ReviewInput{SurfZone: &zone.ID, Rating: 4, Comment: "still epic"})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestReviewOwnerScoping(t *testing.T) {
	db := testDB(t)
	zone := seedZone(t, db, "Hossegor")
	users := NewUserService(db)
	reviews := NewReviewService(db)

	owner, err := users.Register(&RegisterInput{Username: "owner", Password: "surf4life"})
	require.NoError(t, err)
	other, err := users.Register(&RegisterInput{Username: "other", Password: "surf4life"})
	require.NoError(t, err)

	review, err := reviews.CreateReview(owner.ID, &ReviewInput{SurfZone: &zone.ID, Rating: 5})
	require.NoError(t, err)

	// Someone else's review id reads as not-found, never forbidden.
	_, err = reviews.GetUserReview(other.ID, review.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = reviews.DeleteUserReview(other.ID, review.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, reviews.DeleteUserReview(owner.ID, review.ID))
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	db := testDB(t)
	users := NewUserService(db)

	_, err := users.Register(&RegisterInput{Username: "kelly", Password: "surf4life"})
	require.NoError(t, err)

	_, unknownErr := users.Authenticate("nobody", "surf4life")
	_, wrongPassErr := users.Authenticate("kelly", "wrong-password")

	assert.ErrorIs(t, unknownErr, ErrNotFound)
	assert.ErrorIs(t, wrongPassErr, ErrNotFound)
	assert.Equal(t, fmt.Sprint(unknownErr), fmt.Sprint(wrongPassErr))
}

func TestImageSlugUsesParentNameAndTimestamp(t *testing.T) {
	db := testDB(t)
	zone := seedZone(t, db, "Uluwatu")
	svc := NewSurfZoneService(db)

	img := &models.SurfZoneImage{SurfZoneID: zone.ID, Image: "/media/uluwatu.jpg"}
	require.NoError(t, svc.AddZoneImage(zone.ID, img))
	assert.Contains(t, img.Slug, "uluwatu-")

	time.Sleep(time.Millisecond)
	second := &models.SurfZoneImage{SurfZoneID: zone.ID, Image: "/media/uluwatu2.jpg"}
	require.NoError(t, svc.AddZoneImage(zone.ID, second))
	assert.NotEqual(t, img.Slug, second.Slug)
}

func intp(v int) *int { return &v }
