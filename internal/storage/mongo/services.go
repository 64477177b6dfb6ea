package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juju/mgo/v3"
	"github.com/juju/mgo/v3/bson"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

func (r *serviceRepository) Create(ctx context.Context, service model.Service) (*model.Service, error) {
	c, done, err := r.storage.collection(ctx, servicesC)
	if err != nil {
		return nil, err
	}
	defer done()

	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	now := time.Now().UTC()
	service.CreatedAt, service.UpdatedAt = now, now
	if err := c.Insert(toServiceDoc(service)); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Update(ctx context.Context, service model.Service) (*model.Service, error) {
	c, done, err := r.storage.collection(ctx, servicesC)
	if err != nil {
		return nil, err
	}
	defer done()

	doc := toServiceDoc(service)
	change := mgo.Change{
		Update: bson.M{"$set": bson.M{
			"title":         doc.Title,
			"description":   doc.Description,
			"categories":    doc.Categories,
			"image":         doc.Image,
			"pricing_plans": doc.PricingPlans,
			"updated_at":    time.Now().UTC(),
		}},
		ReturnNew: true,
	}
	var updated serviceDoc
	if _, err := c.FindId(doc.ID).Apply(change, &updated); err != nil {
		if err == mgo.ErrNotFound {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated.model()
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	c, done, err := r.storage.collection(ctx, servicesC)
	if err != nil {
		return err
	}
	defer done()

	if err := c.RemoveId(id.String()); err != nil {
		if err == mgo.ErrNotFound {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	c, done, err := r.storage.collection(ctx, servicesC)
	if err != nil {
		return nil, err
	}
	defer done()

	var doc serviceDoc
	if err := c.FindId(id.String()).One(&doc); err != nil {
		if err == mgo.ErrNotFound {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return doc.model()
}

func (r *serviceRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	return r.list(ctx, bson.M{"_id": bson.M{"$in": keys}})
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	return r.list(ctx, nil)
}

func (r *serviceRepository) list(ctx context.Context, query interface{}) ([]model.Service, error) {
	c, done, err := r.storage.collection(ctx, servicesC)
	if err != nil {
		return nil, err
	}
	defer done()

	var docs []serviceDoc
	if err := c.Find(query).Sort("-created_at").All(&docs); err != nil {
		return nil, err
	}
	result := make([]model.Service, 0, len(docs))
	for _, doc := range docs {
		svc, err := doc.model()
		if err != nil {
			return nil, err
		}
		result = append(result, *svc)
	}
	return result, nil
}
