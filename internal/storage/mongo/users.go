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

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	c, done, err := r.storage.collection(ctx, usersC)
	if err != nil {
		return nil, err
	}
	defer done()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().UTC()
	if err := c.Insert(toUserDoc(user)); err != nil {
		if mgo.IsDup(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user model.User) (*model.User, error) {
	c, done, err := r.storage.collection(ctx, usersC)
	if err != nil {
		return nil, err
	}
	defer done()

	change := mgo.Change{
		Update: bson.M{"$set": bson.M{
			"name":          user.Name,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
		}},
		ReturnNew: true,
	}
	var doc userDoc
	if _, err := c.FindId(user.ID.String()).Apply(change, &doc); err != nil {
		switch {
		case err == mgo.ErrNotFound:
			return nil, domainErrors.ErrNotFound
		case mgo.IsDup(err):
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return doc.model()
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *userRepository) findOne(ctx context.Context, query bson.M) (*model.User, error) {
	c, done, err := r.storage.collection(ctx, usersC)
	if err != nil {
		return nil, err
	}
	defer done()

	var doc userDoc
	if err := c.Find(query).One(&doc); err != nil {
		if err == mgo.ErrNotFound {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return doc.model()
}
