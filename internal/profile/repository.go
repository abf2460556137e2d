package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByAgent(ctx context.Context, agentID string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Deactivate(ctx context.Context, id string) error
	ListActiveExcluding(ctx context.Context, agentID string) ([]*Profile, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO profiles (id, agent_id, name, age, gender, location, location_lat, location_lng, bio, interests, photos, looking_for, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.ID, p.AgentID, p.Name, p.Age, p.Gender, p.Location,
		p.LocationLat, p.LocationLng, p.Bio,
		p.Interests, p.Photos, p.LookingFor, p.Active,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT * FROM profiles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetByAgent(ctx context.Context, agentID string) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT * FROM profiles WHERE agent_id = $1`, agentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, age = $3, gender = $4, location = $5,
		    location_lat = $6, location_lng = $7, bio = $8,
		    interests = $9, photos = $10, looking_for = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.ID, p.Name, p.Age, p.Gender, p.Location,
		p.LocationLat, p.LocationLng, p.Bio,
		p.Interests, p.Photos, p.LookingFor,
	).Scan(&p.UpdatedAt)
}

func (r *postgresRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *postgresRepository) ListActiveExcluding(ctx context.Context, agentID string) ([]*Profile, error) {
	var profiles []*Profile
	err := r.db.SelectContext(ctx, &profiles,
		`SELECT * FROM profiles WHERE active = TRUE AND agent_id != $1 ORDER BY created_at ASC`,
		agentID)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
