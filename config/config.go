package config

import (
	"github.com/fox-one/pkg/store/db"
)

// Config arcilend config
type Config struct {
	App      App       `json:"app"`
	DB       db.Config `json:"db"`
	Oracle   Oracle    `json:"oracle"`
	Notifier Notifier  `json:"notifier"`
	Admins   []string  `json:"admins"`
}

// App app config
type App struct {
	Genesis  int64  `json:"genesis"`
	Location string `json:"location"`
}

// Oracle price oracle endpoint config
type Oracle struct {
	EndPoint string `json:"end_point"`
	AssetID  string `json:"asset_id"`
	// Decimals scale of the collateral asset, used to convert ticker
	// prices into smallest units
	Decimals int32 `json:"decimals"`
}

// Notifier event webhook config
type Notifier struct {
	EndPoint string `json:"end_point"`
}
