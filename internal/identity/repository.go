package identity

import (
	"context"

	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Resolver 按业务键查找身份记录，找不到时创建。
// 所有方法都接受调用方的 *gorm.DB，以便在外层事务中执行。
type Resolver struct{}

// NewResolver 创建一个身份解析器
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveOrCreateClient 返回slug对应客户的ID，不存在则创建。
func (r *Resolver) ResolveOrCreateClient(ctx context.Context, tx *gorm.DB, slug string) (uint, error) {
	client, err := resolveOrCreate(ctx, tx, "slug = ?", slug, &Client{Slug: slug})
	if err != nil {
		return 0, apperr.Storage(err, "resolve client "+slug)
	}
	return client.ID, nil
}

// ResolveOrCreateEntrant 返回email对应参与者的ID，不存在则以给定的name创建。
// 已存在的参与者不会因为新的name而被修改。
func (r *Resolver) ResolveOrCreateEntrant(ctx context.Context, tx *gorm.DB, name, email string) (uint, error) {
	entrant, err := resolveOrCreate(ctx, tx, "email = ?", email, &Entrant{Name: name, Email: email})
	if err != nil {
		return 0, apperr.Storage(err, "resolve entrant "+email)
	}
	return entrant.ID, nil
}

// resolveOrCreate 先按条件取第一条记录；没有则插入 fresh。
// 插入使用 ON CONFLICT DO NOTHING：并发请求抢先插入同一个键时，
// 本次插入不生效，随后重新读取对方写入的记录。
func resolveOrCreate[T any](ctx context.Context, tx *gorm.DB, query, key string, fresh *T) (*T, error) {
	db := tx.WithContext(ctx)

	var found T
	err := db.Where(query, key).Order("id asc").First(&found).Error
	if err == nil {
		return &found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		return fresh, nil
	}

	var winner T
	if err := db.Where(query, key).Order("id asc").First(&winner).Error; err != nil {
		return nil, errors.Wrap(err, "re-read after insert conflict")
	}
	return &winner, nil
}
