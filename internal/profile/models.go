package profile

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a JSONB-backed string slice column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	return json.Unmarshal(b, s)
}

// LookingFor holds an agent's dating preferences. Stored as a single
// JSONB column so the whole document is replaced on update.
type LookingFor struct {
	Genders          []string `json:"genders,omitempty"`
	AgeRange         []int    `json:"age_range,omitempty"`
	LocationRadiusKm *float64 `json:"location_radius_km,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	Dealbreakers     []string `json:"dealbreakers,omitempty"`
}

func (l LookingFor) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *LookingFor) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into LookingFor", value)
	}
	return json.Unmarshal(b, l)
}

type Profile struct {
	ID       string `json:"id" db:"id"`
	AgentID  string `json:"agent_id" db:"agent_id"`
	Name     string `json:"name" db:"name"`
	Age      int    `json:"age" db:"age"`
	Gender   string `json:"gender" db:"gender"`
	Location string `json:"location" db:"location"`
	// Stored for future proximity matching; not consulted anywhere yet.
	LocationLat *string     `json:"location_lat,omitempty" db:"location_lat"`
	LocationLng *string     `json:"location_lng,omitempty" db:"location_lng"`
	Bio         string      `json:"bio" db:"bio"`
	Interests   StringList  `json:"interests" db:"interests"`
	Photos      StringList  `json:"photos" db:"photos"`
	LookingFor  *LookingFor `json:"looking_for,omitempty" db:"looking_for"`
	Active      bool        `json:"active" db:"active"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// PublicView is what other agents see when browsing. Preferences stay
// private to the owner.
type PublicView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Age       int        `json:"age"`
	Gender    string     `json:"gender"`
	Location  string     `json:"location"`
	Bio       string     `json:"bio"`
	Interests StringList `json:"interests"`
	Photos    StringList `json:"photos"`
}

func (p *Profile) Public() PublicView {
	return PublicView{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
		Location:  p.Location,
		Bio:       p.Bio,
		Interests: p.Interests,
		Photos:    p.Photos,
	}
}
