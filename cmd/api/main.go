package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/auth"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/candidate"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/config"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/database"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/handler"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/interview"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/logger"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/question"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/repository"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/store"
	"go.uber.org/zap"
)

type application struct {
	Logger     *zap.Logger
	Config     *config.Config
	DB         *pgxpool.Pool
	Store      store.KV
	Candidates *candidate.Store
	Engine     *interview.Engine
	Handler    *handler.Handler
	TokenMaker *auth.JWTMaker
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	var kv store.KV = store.NewMemory()
	if cfg.Redis.Addr != "" {
		client := store.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := store.Ping(ctx, client); err != nil {
			sugar.Fatalf("redis ping failed: %v", err)
		}
		kv = store.NewRedis(client)
		sugar.Infof("using redis store at %s", cfg.Redis.Addr)
	} else {
		sugar.Warn("REDIS_ADDR not set, using in-memory store (no durability)")
	}

	candidates := candidate.NewStore(kv, log)
	var pool *pgxpool.Pool
	if cfg.DB.DSN != "" {
		pool, err = database.Connect(ctx, cfg.DB.DSN)
		if err != nil {
			sugar.Fatal(err)
		}
		defer pool.Close()

		repo := repository.NewRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			sugar.Fatal(err)
		}
		candidates.WithArchive(repo)
		sugar.Info("candidate archive enabled")
	}
	if err := candidates.Load(ctx); err != nil {
		sugar.Fatal(err)
	}

	bank := question.Default()
	if cfg.Interview.QuestionsFile != "" {
		bank, err = question.LoadFile(cfg.Interview.QuestionsFile)
		if err != nil {
			sugar.Fatal(err)
		}
		sugar.Infof("loaded %d questions from %s", bank.Len(), cfg.Interview.QuestionsFile)
	}

	engine := interview.NewEngine(bank, kv, candidates, log,
		interview.WithSink(interview.ZapSink{Logger: log}),
		interview.WithTypingDelay(cfg.Interview.TypingDelay),
	)

	tokenMaker := auth.NewJWTMaker(cfg.JWT.Secret)

	app := &application{
		Logger:     log,
		Config:     cfg,
		DB:         pool,
		Store:      kv,
		Candidates: candidates,
		Engine:     engine,
		TokenMaker: tokenMaker,
		Handler: &handler.Handler{
			Logger:                  log,
			Engine:                  engine,
			Candidates:              candidates,
			TokenMaker:              tokenMaker,
			JwtTTL:                  cfg.JWT.AccessTokenTTL,
			InterviewerEmail:        cfg.Interviewer.Email,
			InterviewerPasswordHash: cfg.Interviewer.PasswordHash,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
