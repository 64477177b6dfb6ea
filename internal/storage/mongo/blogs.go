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

func (r *blogRepository) Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	c, done, err := r.storage.collection(ctx, blogsC)
	if err != nil {
		return nil, err
	}
	defer done()

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now().UTC()
	post.CreatedAt, post.UpdatedAt = now, now
	doc := toBlogDoc(post)
	if err := c.Insert(doc); err != nil {
		return nil, err
	}
	post.Tags = doc.Tags
	return &post, nil
}

func (r *blogRepository) Update(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	c, done, err := r.storage.collection(ctx, blogsC)
	if err != nil {
		return nil, err
	}
	defer done()

	doc := toBlogDoc(post)
	change := mgo.Change{
		Update: bson.M{"$set": bson.M{
			"title":      doc.Title,
			"content":    doc.Content,
			"image":      doc.Image,
			"tags":       doc.Tags,
			"updated_at": time.Now().UTC(),
		}},
		ReturnNew: true,
	}
	var updated blogDoc
	if _, err := c.FindId(doc.ID).Apply(change, &updated); err != nil {
		if err == mgo.ErrNotFound {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated.model()
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	c, done, err := r.storage.collection(ctx, blogsC)
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

func (r *blogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	c, done, err := r.storage.collection(ctx, blogsC)
	if err != nil {
		return nil, err
	}
	defer done()

	var doc blogDoc
	if err := c.FindId(id.String()).One(&doc); err != nil {
		if err == mgo.ErrNotFound {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return doc.model()
}

func (r *blogRepository) List(ctx context.Context, offset, limit int) ([]model.BlogPost, int, error) {
	c, done, err := r.storage.collection(ctx, blogsC)
	if err != nil {
		return nil, 0, err
	}
	defer done()

	total, err := c.Count()
	if err != nil {
		return nil, 0, err
	}
	var docs []blogDoc
	if err := c.Find(nil).Sort("-created_at").Skip(offset).Limit(limit).All(&docs); err != nil {
		return nil, 0, err
	}
	posts := make([]model.BlogPost, 0, len(docs))
	for _, doc := range docs {
		post, err := doc.model()
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, *post)
	}
	return posts, total, nil
}
