package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/config"
	"github.com/open-textbook/anonboard/internal/events"
	"github.com/open-textbook/anonboard/internal/repository"
	"github.com/open-textbook/anonboard/internal/repository/cache"
	"github.com/open-textbook/anonboard/internal/repository/database"
	myRedisCache "github.com/open-textbook/anonboard/internal/repository/redis"
	"github.com/open-textbook/anonboard/internal/rest"
	"github.com/open-textbook/anonboard/internal/rest/middleware"
	"github.com/open-textbook/anonboard/internal/rest/request"
	"github.com/open-textbook/anonboard/internal/rest/templates"
	"github.com/open-textbook/anonboard/internal/usecase/article"
	"github.com/open-textbook/anonboard/internal/usecase/comment"
	"github.com/open-textbook/anonboard/internal/usecase/user"
	"github.com/open-textbook/anonboard/internal/workers"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	cfg.Log.SetupLogger()
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// prepare database
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	// prepare cache
	var (
		rankCache domain.RankCache       = cache.NewNopRankCache()
		bloomRepo domain.BloomRepository = cache.NewNopBloom()
	)
	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr(),
			Password: cfg.Cache.Pass,
			DB:       cfg.Cache.DB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("got error when closing the cache connection: %v", err)
			}
		}()
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to open connection to cache: ", err)
		}
		rankCache = myRedisCache.NewRankCache(client)
		bloomRepo = myRedisCache.NewRedisBloomRepo(client, cfg.Bloom.BitSize)
	} else {
		logrus.Warn("cache disabled, ranks are read from the database")
	}

	publisher, err := events.New(cfg.Events)
	if err != nil {
		log.Fatal("failed to prepare event publisher: ", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logrus.Errorf("failed to close event publisher: %v", err)
		}
	}()

	// Prepare Repository
	userRepo := database.NewUserRepository(db)
	commentRepo := database.NewCommentRepository(db)
	articleDBRepo := database.NewArticleRepository(db)
	articleRepo := repository.NewArticleRepository(articleDBRepo, rankCache, cfg.Rank.TTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build service Layer
	articleSvc := article.NewService(articleRepo, bloomRepo, publisher)
	commentSvc := comment.NewService(commentRepo, articleSvc, rankCache, publisher)
	userSvc := user.NewService(userRepo, []byte(cfg.JWT.Secret), cfg.JWT.TTL)

	if err := articleSvc.SyncBloomFilter(ctx); err != nil {
		log.Fatal("failed to init bloom filter: ", err)
	}

	// Start workers
	rankRefresher := workers.NewRefreshRanksWorker(articleRepo, cfg.Rank.RefreshInterval)
	go rankRefresher.Start(ctx)
	bloomSyncer := workers.NewSyncBloomWorker(articleSvc, cfg.Bloom.SyncInterval)
	go bloomSyncer.Start(ctx)

	// prepare gin
	gin.SetMode(gin.ReleaseMode)
	request.RegisterValidators()
	tmpl, err := templates.Parse()
	if err != nil {
		log.Fatal("failed to parse templates: ", err)
	}

	route := gin.New()
	route.SetHTMLTemplate(tmpl)
	route.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.Secure(cfg.Server.SSL),
		middleware.CORS(cfg.Cors.AllowOrigins),
		middleware.SetRequestContextWithTimeout(cfg.Server.ContextTimeout),
		middleware.Authenticate(cfg.JWT.Secret),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.Cleanup(ctx)
	limited := limiter.Middleware()
	loginRequired := middleware.LoginRequired(rest.SigninPath)

	articleHandler := rest.NewArticleHandler(articleSvc, commentSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	userHandler := rest.NewUserHandler(userSvc, cfg.JWT.TTL, cfg.Server.SSL)

	// Register routes
	route.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, rest.BoardPath) })

	board := route.Group("/anonymouses")
	{
		board.GET("/", articleHandler.Index)
		board.GET("/create", loginRequired, articleHandler.CreateForm)
		board.POST("/create", limited, loginRequired, articleHandler.Create)
		board.GET("/:id", articleHandler.Detail)
		board.PUT("/:id", limited, articleHandler.Update)
		board.GET("/:id/update", articleHandler.UpdateForm)
		board.POST("/:id/update", limited, articleHandler.Update)
		board.POST("/:id/delete", limited, articleHandler.Delete)
		board.POST("/:id/comments", limited, loginRequired, commentHandler.CreateComment)
		board.POST("/:id/comments/:comment_id/delete", limited, commentHandler.DeleteComment)
		board.POST("/:id/like", limited, middleware.AuthMiddleware(cfg.JWT.Secret), articleHandler.Like)
	}

	accounts := route.Group("/accounts")
	{
		accounts.GET("/signup", userHandler.SignUpForm)
		accounts.POST("/signup", limited, userHandler.SignUp)
		accounts.GET("/signin", userHandler.SignInForm)
		accounts.POST("/signin", limited, userHandler.SignIn)
		accounts.POST("/signout", userHandler.SignOut)
	}

	api := route.Group("/api/anonymouses")
	{
		api.GET("", articleHandler.FetchArticle)
		api.GET("/ranks", articleHandler.FetchRank)
		api.GET("/:id", articleHandler.GetByID)
	}

	// Start Server
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           route,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}
