package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"zerai/internal/models"
)

type GameRepository struct {
	db *DB
}

func NewGameRepository(db *DB) *GameRepository {
	return &GameRepository{db: db}
}

type CreateGameParams struct {
	UserID          string
	RawgID          int64
	GameTitle       string
	Platform        string
	BackgroundImage string
	Status          models.Status
}

// UpdateGameFields carries a partial update; nil fields are left untouched.
// A Rating pointing at 0 clears the rating back to unset.
type UpdateGameFields struct {
	GameTitle *string
	Platform  *string
	Status    *models.Status
	Rating    *int
}

// Create inserts a new game for a user. The pre-check by (user_id, rawg_id)
// only exists for a friendlier error; the UNIQUE index on the same pair is the
// authoritative guard when two inserts race.
func (r *GameRepository) Create(ctx context.Context, p CreateGameParams) (*models.Game, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM games WHERE user_id = ? AND rawg_id = ?`,
		p.UserID, p.RawgID,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("checking for existing game: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	id, err := GenerateID("gam")
	if err != nil {
		return nil, fmt.Errorf("generating game ID: %w", err)
	}
	now := time.Now().UTC()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO games (id, user_id, rawg_id, game_title, platform, background_image, status, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.UserID, p.RawgID, p.GameTitle, p.Platform, p.BackgroundImage, string(p.Status), now,
	)
	if err != nil {
		if IsUniqueConstraintError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("creating game: %w", err)
	}

	return &models.Game{
		ID:              id,
		UserID:          p.UserID,
		RawgID:          p.RawgID,
		GameTitle:       p.GameTitle,
		Platform:        p.Platform,
		BackgroundImage: p.BackgroundImage,
		Status:          p.Status,
		CreatedAt:       now,
	}, nil
}

// ListByUser returns all of a user's games, most recently added first.
func (r *GameRepository) ListByUser(ctx context.Context, userID string) ([]*models.Game, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, rawg_id, game_title, platform, background_image, status, rating, created_at, updated_at
         FROM games WHERE user_id = ?
         ORDER BY created_at DESC, rowid DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	games := []*models.Game{}
	for rows.Next() {
		g, err := scanGame(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

func (r *GameRepository) FindByID(ctx context.Context, id string) (*models.Game, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, rawg_id, game_title, platform, background_image, status, rating, created_at, updated_at
         FROM games WHERE id = ?`,
		id,
	)

	g, err := scanGame(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Update applies the present fields and returns the post-update row.
func (r *GameRepository) Update(ctx context.Context, id string, f UpdateGameFields) (*models.Game, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if f.GameTitle != nil {
		sets = append(sets, "game_title = ?")
		args = append(args, *f.GameTitle)
	}
	if f.Platform != nil {
		sets = append(sets, "platform = ?")
		args = append(args, *f.Platform)
	}
	if f.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*f.Status))
	}
	if f.Rating != nil {
		if *f.Rating == 0 {
			sets = append(sets, "rating = NULL")
		} else {
			sets = append(sets, "rating = ?")
			args = append(args, *f.Rating)
		}
	}

	args = append(args, id)
	query := "UPDATE games SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating game: %w", err)
	}
	if err := checkRowsAffected(result); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}
	return checkRowsAffected(result)
}

func scanGame(scan func(dest ...any) error) (*models.Game, error) {
	var g models.Game
	var status string
	var rating sql.NullInt64
	var updatedAt sql.NullTime

	err := scan(
		&g.ID,
		&g.UserID,
		&g.RawgID,
		&g.GameTitle,
		&g.Platform,
		&g.BackgroundImage,
		&status,
		&rating,
		&g.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.Status = models.Status(status)
	g.Rating = nullIntToPtr(rating)
	g.UpdatedAt = nullTimeToPtr(updatedAt)

	return &g, nil
}
