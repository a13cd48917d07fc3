package account

import (
	"arcilend/core"
	"context"
	"fmt"
	"time"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/store/db"
	"golang.org/x/sync/singleflight"
)

// Cache wraps the account store with a read-through LRU for the api
// server. Writes drop the cached entry instead of refreshing it: a
// refresh inside an uncommitted transaction would serve state the
// database may never commit.
func Cache(store core.IAccountStore, exp time.Duration) core.IAccountStore {
	return &cacheAccountStore{
		IAccountStore: store,
		cache:         gcache.New(2048).LRU().Build(),
		exp:           exp,
		sf:            &singleflight.Group{},
	}
}

type cacheAccountStore struct {
	core.IAccountStore
	cache gcache.Cache
	exp   time.Duration
	sf    *singleflight.Group
}

func (s *cacheAccountStore) Save(ctx context.Context, tx *db.DB, account *core.Account) error {
	if err := s.IAccountStore.Save(ctx, tx, account); err != nil {
		return err
	}
	s.cache.Remove(s.accountKey(account.Owner))
	return nil
}

func (s *cacheAccountStore) Update(ctx context.Context, tx *db.DB, account *core.Account) error {
	if err := s.IAccountStore.Update(ctx, tx, account); err != nil {
		return err
	}
	s.cache.Remove(s.accountKey(account.Owner))
	return nil
}

func (s *cacheAccountStore) Find(ctx context.Context, owner string) (*core.Account, error) {
	if v, err := s.cache.Get(s.accountKey(owner)); err == nil {
		if account, ok := v.(*core.Account); ok {
			return account, nil
		}
	}

	v, err, _ := s.sf.Do(s.accountKey(owner), func() (interface{}, error) {
		account, err := s.IAccountStore.Find(ctx, owner)
		if err != nil {
			return nil, err
		}

		if account.ID > 0 {
			s.cacheAccount(account)
		}

		return account, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*core.Account), nil
}

func (s *cacheAccountStore) cacheAccount(account *core.Account) {
	_ = s.cache.SetWithExpire(s.accountKey(account.Owner), account, s.exp)
}

func (s *cacheAccountStore) accountKey(owner string) string {
	return fmt.Sprintf("account:%s", owner)
}
