package entry

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SlpAus/instant-win-backend/internal/identity"
	"github.com/SlpAus/instant-win-backend/internal/notification"
	"github.com/SlpAus/instant-win-backend/internal/platform/config"
	"github.com/SlpAus/instant-win-backend/internal/platform/database"
	"github.com/SlpAus/instant-win-backend/internal/promotion"
	"github.com/SlpAus/instant-win-backend/pkg/optional"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2021, 8, 27, 9, 30, 0, 0, time.UTC)

// fakeQueue 记录入队的通知；full 为true时模拟队列已满，拒绝入队
type fakeQueue struct {
	mu      sync.Mutex
	full    bool
	refused int
	notices []notification.WinnerNotice
}

func (q *fakeQueue) Enqueue(n notification.WinnerNotice) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full {
		q.refused++
		return false
	}
	q.notices = append(q.notices, n)
	return true
}

type fixture struct {
	db      *gorm.DB
	queue   *fakeQueue
	service *Service
	promos  *promotion.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSqlite,
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, identity.MigrateDB(db))
	require.NoError(t, promotion.MigrateDB(db))
	require.NoError(t, MigrateDB(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	resolver := identity.NewResolver()
	repo := promotion.NewRepository()
	queue := &fakeQueue{}
	svc := NewService(db, resolver, repo, queue)
	svc.clock = func() time.Time { return fixedNow }

	return &fixture{
		db:      db,
		queue:   queue,
		service: svc,
		promos:  promotion.NewService(db, resolver, repo),
	}
}

func (f *fixture) registerPromotion(t *testing.T, name, moment string, chance int) {
	t.Helper()
	_, err := f.promos.RegisterPromotion(context.Background(), promotion.RegisterRequest{
		ClientSlug:    "acme",
		PromoName:     optional.Of(name),
		WinningMoment: optional.Of(moment),
		Chance:        optional.Of(chance),
	})
	require.NoError(t, err)
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func chanceSubmission(chance int) Submission {
	return Submission{
		EntrantName:  optional.Of("Ana"),
		EntrantEmail: optional.Of("ana@example.com"),
		PromoName:    optional.Of("Summer Splash"),
		Chance:       optional.Of(chance),
	}
}

func momentSubmission(moment string) Submission {
	return Submission{
		EntrantName:   optional.Of("Ana"),
		EntrantEmail:  optional.Of("ana@example.com"),
		PromoName:     optional.Of("Summer Splash"),
		WinningMoment: optional.Of(moment),
	}
}
