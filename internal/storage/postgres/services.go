package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const serviceColumns = `id, title, description, categories, image, pricing_plans, created_at, updated_at`

// planRecord is the JSONB shape of a single pricing tier.
type planRecord struct {
	PlanID   string   `json:"planId"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
}

func encodePlans(plans map[model.PlanTier]model.PricingPlan) ([]byte, error) {
	records := make(map[model.PlanTier]planRecord, len(plans))
	for tier, plan := range plans {
		features := plan.Features
		if features == nil {
			features = []string{}
		}
		records[tier] = planRecord{PlanID: plan.PlanID, Price: plan.Price, Features: features}
	}
	return json.Marshal(records)
}

func decodePlans(raw []byte) (map[model.PlanTier]model.PricingPlan, error) {
	var records map[model.PlanTier]planRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode pricing plans: %w", err)
	}
	plans := make(map[model.PlanTier]model.PricingPlan, len(records))
	for tier, rec := range records {
		plans[tier] = model.PricingPlan{PlanID: rec.PlanID, Price: rec.Price, Features: rec.Features}
	}
	return plans, nil
}

func (r *serviceRepository) Create(ctx context.Context, service model.Service) (*model.Service, error) {
	const query = `INSERT INTO services (id, title, description, categories, image, pricing_plans)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at, updated_at`
	plans, err := encodePlans(service.PricingPlans)
	if err != nil {
		return nil, err
	}
	if service.ID == uuid.Nil {
		service.ID = newID()
	}
	err = r.storage.pool.QueryRow(ctx, query, service.ID, service.Title, service.Description, service.Categories, service.Image, plans).
		Scan(&service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Update(ctx context.Context, service model.Service) (*model.Service, error) {
	const query = `UPDATE services
                   SET title=$2, description=$3, categories=$4, image=$5, pricing_plans=$6, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	plans, err := encodePlans(service.PricingPlans)
	if err != nil {
		return nil, err
	}
	err = r.storage.pool.QueryRow(ctx, query, service.ID, service.Title, service.Description, service.Categories, service.Image, plans).
		Scan(&service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM services WHERE id=$1`
	svc, err := scanService(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (r *serviceRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ANY($1)`, ids)
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC`)
}

func (r *serviceRepository) list(ctx context.Context, query string, args ...any) ([]model.Service, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *svc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanService(row pgx.Row) (*model.Service, error) {
	var (
		svc   model.Service
		plans []byte
	)
	if err := row.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Categories, &svc.Image, &plans, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
		return nil, err
	}
	decoded, err := decodePlans(plans)
	if err != nil {
		return nil, err
	}
	svc.PricingPlans = decoded
	return &svc, nil
}
