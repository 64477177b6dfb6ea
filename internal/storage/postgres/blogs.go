package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const blogColumns = `id, author_id, title, content, image, tags, created_at, updated_at`

func (r *blogRepository) Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	const query = `INSERT INTO blog_posts (id, author_id, title, content, image, tags)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at, updated_at`
	if post.ID == uuid.Nil {
		post.ID = newID()
	}
	post.Tags = nonNilTags(post.Tags)
	err := r.storage.pool.QueryRow(ctx, query, post.ID, post.AuthorID, post.Title, post.Content, post.Image, post.Tags).
		Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) Update(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	const query = `UPDATE blog_posts
                   SET title=$2, content=$3, image=$4, tags=$5, updated_at=NOW()
                   WHERE id=$1
                   RETURNING ` + blogColumns
	stored, err := scanPost(r.storage.pool.QueryRow(ctx, query, post.ID, post.Title, post.Content, post.Image, nonNilTags(post.Tags)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	post, err := scanPost(r.storage.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (r *blogRepository) List(ctx context.Context, offset, limit int) ([]model.BlogPost, int, error) {
	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.pool.Query(ctx, `SELECT `+blogColumns+` FROM blog_posts ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func scanPost(row pgx.Row) (*model.BlogPost, error) {
	var p model.BlogPost
	if err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Image, &p.Tags, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
