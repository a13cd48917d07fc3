package cmd

import (
	"arcilend/core"
	accountservice "arcilend/service/account"
	loanservice "arcilend/service/loan"
	"arcilend/service/notifier"
	oracleservice "arcilend/service/oracle"
	poolservice "arcilend/service/pool"
	"arcilend/store/account"
	"arcilend/store/event"
	"arcilend/store/loan"
	"arcilend/store/pool"
	"arcilend/store/price"
	"arcilend/store/wallet"
	"time"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideSystem() *core.System {
	return &core.System{
		Admins:  cfg.Admins,
		Genesis: cfg.App.Genesis,
		Version: rootCmd.Version,
	}
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func providePoolStore(db *db.DB) core.IPoolStore {
	return pool.New(db)
}

func provideAccountStore(db *db.DB) core.IAccountStore {
	return account.New(db)
}

// the cache only fronts the read-only api; the payee writes through the
// plain store so a rolled-back transaction cannot leave a stale entry
func provideCachedAccountStore(db *db.DB) core.IAccountStore {
	return account.Cache(account.New(db), time.Second)
}

func provideLoanStore(db *db.DB) core.ILoanStore {
	return loan.New(db)
}

func provideWalletStore(db *db.DB) core.IWalletStore {
	return wallet.New(db)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return event.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return price.New(db)
}

// ------------------service------------------------------------

func providePoolService() core.IPoolService {
	return poolservice.New()
}

func provideAccountService() core.IAccountService {
	return accountservice.New()
}

func provideLoanService() core.ILoanService {
	return loanservice.New()
}

func provideEventService() core.IEventService {
	return notifier.New(&cfg)
}

func providePriceOracleService() core.IPriceOracleService {
	return oracleservice.New(&cfg)
}
