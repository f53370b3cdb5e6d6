package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mera-studio/studio-backend-go/internal/domain/attendance"
	"github.com/mera-studio/studio-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// CreateWithPenalty implements attendance.Repository. The punch insert and
// the penalty accumulation on the crew member happen in one transaction.
func (r *attendanceRepository) CreateWithPenalty(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		punch.ID = uuid.NewString()

		query := `
			INSERT INTO attendance_punches (
				id, crew_id, work_date, shift_id, check_in,
				late_minutes, penalty_amount
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			) RETURNING created_at
		`

		err := q.QueryRow(txCtx, query,
			punch.ID,
			punch.CrewID,
			punch.Date,
			punch.ShiftID,
			punch.CheckIn,
			punch.LateMinutes,
			punch.PenaltyAmount,
		).Scan(&punch.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}

		if punch.PenaltyAmount > 0 {
			penaltyQuery := `
				UPDATE crew_members
				SET manual_deduction = manual_deduction + $2, updated_at = NOW()
				WHERE id = $1
			`
			tag, err := q.Exec(txCtx, penaltyQuery, punch.CrewID, punch.PenaltyAmount)
			if err != nil {
				return fmt.Errorf("failed to apply penalty: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("failed to apply penalty: crew member %s not found", punch.CrewID)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.Punch{}, err
	}
	return punch, nil
}

// GetOpenPunch implements attendance.Repository.
func (r *attendanceRepository) GetOpenPunch(ctx context.Context, crewID string, dateKey string) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, crew_id, work_date, shift_id, check_in, check_out,
			   late_minutes, penalty_amount, created_at
		FROM attendance_punches
		WHERE crew_id = $1 AND work_date = $2 AND check_out IS NULL
	`

	var punch attendance.Punch
	err := q.QueryRow(ctx, query, crewID, dateKey).Scan(
		&punch.ID, &punch.CrewID, &punch.Date, &punch.ShiftID,
		&punch.CheckIn, &punch.CheckOut,
		&punch.LateMinutes, &punch.PenaltyAmount, &punch.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Punch{}, attendance.ErrNoOpenPunch
		}
		return attendance.Punch{}, fmt.Errorf("failed to get open punch: %w", err)
	}
	return punch, nil
}

// SetCheckOut implements attendance.Repository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, punchID string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_punches
		SET check_out = $2
		WHERE id = $1 AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, punchID, at)
	if err != nil {
		return fmt.Errorf("failed to set check out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrPunchNotFound
	}
	return nil
}

// ListByRange implements attendance.Repository.
func (r *attendanceRepository) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.crew_id, p.work_date, p.shift_id, p.check_in, p.check_out,
			   p.late_minutes, p.penalty_amount, p.created_at, c.name
		FROM attendance_punches p
		JOIN crew_members c ON c.id = p.crew_id
		WHERE p.work_date BETWEEN $1 AND $2
		ORDER BY p.work_date, p.check_in
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows, true)
}

// ListOpenBefore implements attendance.Repository.
func (r *attendanceRepository) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, crew_id, work_date, shift_id, check_in, check_out,
			   late_minutes, penalty_amount, created_at
		FROM attendance_punches
		WHERE work_date < $1 AND check_out IS NULL
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list open punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows, false)
}

func scanPunches(rows pgx.Rows, withName bool) ([]attendance.Punch, error) {
	var punches []attendance.Punch
	for rows.Next() {
		var punch attendance.Punch
		dest := []any{
			&punch.ID, &punch.CrewID, &punch.Date, &punch.ShiftID,
			&punch.CheckIn, &punch.CheckOut,
			&punch.LateMinutes, &punch.PenaltyAmount, &punch.CreatedAt,
		}
		if withName {
			dest = append(dest, &punch.CrewName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, punch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}
	return punches, nil
}
