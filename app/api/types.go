package api

import (
	"time"

	"github.com/lysyi3m/funding-radar/app/database"
	"github.com/lysyi3m/funding-radar/app/feed"
)

type Handler struct {
	newsRepo    database.NewsRepository
	configCache *feed.ConfigCache
	version     string
	now         func() time.Time
}

type newsQuery struct {
	Source    string `form:"source"`
	SinceDays int    `form:"since_days,default=90" binding:"min=0"`
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
}
