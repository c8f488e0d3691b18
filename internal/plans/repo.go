package plans

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer tracing.EndSpanWithErrCheck(span, err)

	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_plan (athlete_id, title, description, active, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		plan.AthleteID,
		plan.Title,
		plan.Description,
		plan.Active,
		plan.Payload,
		plan.CreatedAt,
	).Scan(&plan.ID)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer tracing.EndSpanWithErrCheck(span, err)

	plan := &Plan{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, athlete_id, title, description, active, payload, created_at
			FROM workout_plan
			WHERE id = $1
		`, id).
		Scan(
			&plan.ID, &plan.AthleteID, &plan.Title, &plan.Description,
			&plan.Active, &plan.Payload, &plan.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// GetActive returns the athlete's newest active plan.
func (r *Repo) GetActive(ctx context.Context, athleteID int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getactive")
	defer tracing.EndSpanWithErrCheck(span, err)

	plan := &Plan{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, athlete_id, title, description, active, payload, created_at
			FROM workout_plan
			WHERE athlete_id = $1 AND active IS TRUE
			ORDER BY created_at DESC
			LIMIT 1
		`, athleteID).
		Scan(
			&plan.ID, &plan.AthleteID, &plan.Title, &plan.Description,
			&plan.Active, &plan.Payload, &plan.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (r *Repo) List(ctx context.Context, athleteID int) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer tracing.EndSpanWithErrCheck(span, err)

	rows, err := r.db.Query(ctx, `
		SELECT id, athlete_id, title, description, active, payload, created_at
		FROM workout_plan
		WHERE athlete_id = $1
		ORDER BY created_at DESC;
	`, athleteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Plan, 0)
	for rows.Next() {
		var plan Plan
		if err := rows.Scan(
			&plan.ID, &plan.AthleteID, &plan.Title, &plan.Description,
			&plan.Active, &plan.Payload, &plan.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repo) SetActive(ctx context.Context, id int, active bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.setactive")
	defer tracing.EndSpanWithErrCheck(span, err)

	tag, err := r.db.Exec(ctx, `UPDATE workout_plan SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer tracing.EndSpanWithErrCheck(span, err)

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plan WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}
