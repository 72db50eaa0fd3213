package api

import "surfquest/server/internal/models"

// Lite payloads: the trimmed shapes the listing pages consume. They carry a
// single main image, computed from the already-preloaded image slice so no
// extra query runs per row.

type ImagePayload struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	CreatedAt   string `json:"created_at"`
}

type CountryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Slug string `json:"slug"`
}

type SurfZoneLite struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Slug              string          `json:"slug"`
	Country           *CountryPayload `json:"country,omitempty"`
	TravelerType      []string        `json:"traveler_type"`
	Safety            string          `json:"safety"`
	Comfort           string          `json:"confort"`
	Cost              string          `json:"cost"`
	BestMonths        []string        `json:"best_months"`
	MainWaveDirection string          `json:"main_wave_direction"`
	MainImage         *ImagePayload   `json:"main_image,omitempty"`
}

type SurfSpotLite struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Slug               string        `json:"slug"`
	SurfZoneID         string        `json:"surfzone_id"`
	SurfZoneName       string        `json:"surfzone_name,omitempty"`
	SurfZoneSlug       string        `json:"surfzone_slug,omitempty"`
	BreakType          string        `json:"break_type"`
	WaveDirection      string        `json:"wave_direction"`
	BestWindDirection  string        `json:"best_wind_direction"`
	BestSwellDirection string        `json:"best_swell_direction"`
	BestSwellSizeMeter *float64      `json:"best_swell_size_meter"`
	BestTide           []string      `json:"best_tide"`
	SurfLevel          []string      `json:"surf_level"`
	BestMonths         []string      `json:"best_months"`
	MainImage          *ImagePayload `json:"main_image,omitempty"`
}

func imagePayload(id, image, description, slug, createdAt string) *ImagePayload {
	return &ImagePayload{ID: id, Image: image, Description: description, Slug: slug, CreatedAt: createdAt}
}

const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

func zoneLite(z *models.SurfZone) SurfZoneLite {
	lite := SurfZoneLite{
		ID:                z.ID,
		Name:              z.Name,
		Slug:              z.Slug,
		TravelerType:      z.TravelerType,
		Safety:            z.Safety,
		Comfort:           z.Comfort,
		Cost:              z.Cost,
		BestMonths:        z.BestMonths,
		MainWaveDirection: z.MainWaveDirection,
	}
	if z.Country != nil {
		lite.Country = &CountryPayload{
			ID:   z.Country.ID,
			Name: z.Country.Name,
			Code: z.Country.Code,
			Slug: z.Country.Slug,
		}
	}
	// Images are preloaded in created_at order; the first is the main one.
	if len(z.ZoneImages) > 0 {
		img := z.ZoneImages[0]
		lite.MainImage = imagePayload(img.ID, img.Image, img.Description, img.Slug, img.CreatedAt.Format(timeLayout))
	}
	return lite
}

func zoneLiteList(zones []models.SurfZone) []SurfZoneLite {
	out := make([]SurfZoneLite, 0, len(zones))
	for i := range zones {
		out = append(out, zoneLite(&zones[i]))
	}
	return out
}

func spotLite(s *models.SurfSpot) SurfSpotLite {
	lite := SurfSpotLite{
		ID:                 s.ID,
		Name:               s.Name,
		Slug:               s.Slug,
		SurfZoneID:         s.SurfZoneID,
		BreakType:          s.BreakType,
		WaveDirection:      s.WaveDirection,
		BestWindDirection:  s.BestWindDirection,
		BestSwellDirection: s.BestSwellDirection,
		BestSwellSizeMeter: s.BestSwellSizeMeter,
		BestTide:           s.BestTide,
		SurfLevel:          s.SurfLevel,
		BestMonths:         s.BestMonths,
	}
	if s.SurfZone != nil {
		lite.SurfZoneName = s.SurfZone.Name
		lite.SurfZoneSlug = s.SurfZone.Slug
	}
	if len(s.SpotImages) > 0 {
		img := s.SpotImages[0]
		lite.MainImage = imagePayload(img.ID, img.Image, img.Description, img.Slug, img.CreatedAt.Format(timeLayout))
	}
	return lite
}

func spotLiteList(spots []models.SurfSpot) []SurfSpotLite {
	out := make([]SurfSpotLite, 0, len(spots))
	for i := range spots {
		out = append(out, spotLite(&spots[i]))
	}
	return out
}
