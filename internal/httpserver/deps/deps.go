package deps

import (
	"time"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/MrSnakeDoc/voyage/internal/logger"
	redisstore "github.com/MrSnakeDoc/voyage/internal/store/redis"
)

type Deps struct {
	Logger           logger.Logger
	StartTime        time.Time
	Version          string
	Commit           string
	BuildDate        string
	GoVersion        string
	TimeNow          func() time.Time  // for testing, defaults to time.Now
	Store            *redisstore.Store // document store handle, initialized once at startup
	SettingsDefaults domain.Settings   // defaults used for the lazy settings creation
	CORSOrigins      []string          // origins allowed by the CORS middleware
}
