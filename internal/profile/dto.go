package profile

type LookingForDTO struct {
	Genders          []string `json:"genders" validate:"omitempty,dive,min=1"`
	AgeRange         []int    `json:"age_range" validate:"omitempty,len=2,dive,min=18,max=120"`
	LocationRadiusKm *float64 `json:"location_radius_km" validate:"omitempty,gt=0"`
	Interests        []string `json:"interests" validate:"omitempty,dive,min=1"`
	Dealbreakers     []string `json:"dealbreakers" validate:"omitempty,dive,min=1"`
}

// Only name is required; age, gender, and location are optional, and the
// matching engine skips the checks that depend on them when absent. Age
// bounds and the interest cap are configured, so the service enforces them.
type CreateProfileDTO struct {
	Name        string         `json:"name" validate:"required,min=1,max=100"`
	Age         int            `json:"age"`
	Gender      string         `json:"gender" validate:"omitempty,max=50"`
	Location    string         `json:"location" validate:"omitempty,max=200"`
	LocationLat *string        `json:"location_lat" validate:"omitempty,latitude"`
	LocationLng *string        `json:"location_lng" validate:"omitempty,longitude"`
	Bio         string         `json:"bio" validate:"max=2000"`
	Interests   []string       `json:"interests" validate:"omitempty,dive,min=1,max=100"`
	Photos      []string       `json:"photos" validate:"omitempty,max=10,dive,url"`
	LookingFor  *LookingForDTO `json:"looking_for"`
}

type UpdateProfileDTO struct {
	Name        *string        `json:"name" validate:"omitempty,min=1,max=100"`
	Age         *int           `json:"age"`
	Gender      *string        `json:"gender" validate:"omitempty,max=50"`
	Location    *string        `json:"location" validate:"omitempty,max=200"`
	LocationLat *string        `json:"location_lat" validate:"omitempty,latitude"`
	LocationLng *string        `json:"location_lng" validate:"omitempty,longitude"`
	Bio         *string        `json:"bio" validate:"omitempty,max=2000"`
	Interests   []string       `json:"interests" validate:"omitempty,dive,min=1,max=100"`
	Photos      []string       `json:"photos" validate:"omitempty,max=10,dive,url"`
	LookingFor  *LookingForDTO `json:"looking_for"`
}

func (d *LookingForDTO) toModel() *LookingFor {
	if d == nil {
		return nil
	}
	return &LookingFor{
		Genders:          d.Genders,
		AgeRange:         d.AgeRange,
		LocationRadiusKm: d.LocationRadiusKm,
		Interests:        d.Interests,
		Dealbreakers:     d.Dealbreakers,
	}
}
