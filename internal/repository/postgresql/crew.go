package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/pkg/database"
)

type crewRepository struct {
	db *database.DB
}

func NewCrewRepository(db *database.DB) crew.Repository {
	return &crewRepository{db: db}
}

// Create implements crew.Repository.
func (r *crewRepository) Create(ctx context.Context, member crew.Member) (crew.Member, error) {
	q := GetQuerier(ctx, r.db)

	member.ID = uuid.NewString()

	query := `
		INSERT INTO crew_members (
			id, name, position, pay_status, shift_id, daily_base,
			manual_bonus, manual_deduction
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		member.ID,
		member.Name,
		member.Position,
		member.PayStatus,
		member.ShiftID,
		member.DailyBase,
		member.ManualBonus,
		member.ManualDeduction,
	).Scan(&member.CreatedAt, &member.UpdatedAt)

	if err != nil {
		return crew.Member{}, fmt.Errorf("failed to create crew member: %w", err)
	}
	return member, nil
}

// GetByID implements crew.Repository.
func (r *crewRepository) GetByID(ctx context.Context, id string) (crew.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, position, pay_status, shift_id, daily_base,
			   manual_bonus, manual_deduction, created_at, updated_at
		FROM crew_members
		WHERE id = $1
	`

	var member crew.Member
	err := q.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Position, &member.PayStatus,
		&member.ShiftID, &member.DailyBase,
		&member.ManualBonus, &member.ManualDeduction,
		&member.CreatedAt, &member.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return crew.Member{}, crew.ErrMemberNotFound
		}
		return crew.Member{}, fmt.Errorf("failed to get crew member: %w", err)
	}
	return member, nil
}

// List implements crew.Repository.
func (r *crewRepository) List(ctx context.Context) ([]crew.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, position, pay_status, shift_id, daily_base,
			   manual_bonus, manual_deduction, created_at, updated_at
		FROM crew_members
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}
	defer rows.Close()

	var members []crew.Member
	for rows.Next() {
		var member crew.Member
		if err := rows.Scan(
			&member.ID, &member.Name, &member.Position, &member.PayStatus,
			&member.ShiftID, &member.DailyBase,
			&member.ManualBonus, &member.ManualDeduction,
			&member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate crew members: %w", err)
	}
	return members, nil
}

// Update implements crew.Repository.
func (r *crewRepository) Update(ctx context.Context, member crew.Member) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE crew_members
		SET name = $2, position = $3, pay_status = $4, shift_id = $5,
			daily_base = $6, manual_bonus = $7, manual_deduction = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		member.ID, member.Name, member.Position, member.PayStatus,
		member.ShiftID, member.DailyBase,
		member.ManualBonus, member.ManualDeduction,
	)
	if err != nil {
		return fmt.Errorf("failed to update crew member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return crew.ErrMemberNotFound
	}
	return nil
}

// AddDeduction implements crew.Repository.
func (r *crewRepository) AddDeduction(ctx context.Context, id string, amount int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE crew_members
		SET manual_deduction = manual_deduction + $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("failed to add deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return crew.ErrMemberNotFound
	}
	return nil
}
