package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/analysis"
	"resume-insight/internal/embedding"
	embeddingopenai "resume-insight/internal/embedding/openai"
	"resume-insight/internal/interview"
	"resume-insight/internal/llm"
	llmopenai "resume-insight/internal/llm/openai"
	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/server"
	"resume-insight/internal/shared/storage/db"
	"resume-insight/internal/shared/storage/object"
	localstore "resume-insight/internal/shared/storage/object/local"
)

// App holds shared dependencies built once at startup.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	LLM              llm.Client
	Embedder         embedding.Provider
	AnalysisRepo     analysis.Repo
	AnalysisService  *analysis.Service
	InterviewService *interview.Service
	AnalysisHandler  *analysis.Handler
	InterviewHandler *interview.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		AnalysisHandler:  app.AnalysisHandler,
		InterviewHandler: app.InterviewHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; keeping analysis history in memory")
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; keeping analysis history in memory: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; keeping analysis history in memory: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	cfg := app.Config

	// Generative provider: real client when a key is configured, the
	// always-fallback stub otherwise.
	llmClient := llm.Client(llm.Disabled{})
	if cfg.HasLLM() {
		client, err := llmopenai.NewClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
		if err != nil {
			return err
		}
		llmClient = client
	} else {
		log.Printf("bootstrap: GROQ_API_KEY empty; generative features run on deterministic fallbacks")
	}

	// Section matcher: embeddings when configured, word-overlap otherwise.
	matcher := analysis.SectionMatcher(analysis.LexicalMatcher{})
	if cfg.HasEmbedding() {
		embedder, err := embeddingopenai.NewClient(cfg.EmbeddingAPIKey, cfg.EmbeddingBaseURL, cfg.EmbeddingModel)
		if err != nil {
			return err
		}
		app.Embedder = embedder
		matcher = &analysis.EmbeddingMatcher{Provider: embedder}
	} else {
		log.Printf("bootstrap: EMBEDDING_API_KEY empty; using lexical section matching")
	}

	var analysisRepo analysis.Repo
	if app.DB != nil {
		analysisRepo = &analysis.PGRepo{DB: app.DB}
	} else {
		analysisRepo = analysis.NewMemoryRepo()
	}

	app.LLM = llmClient
	app.AnalysisRepo = analysisRepo
	app.AnalysisService = analysis.NewService(llmClient, matcher)
	app.InterviewService = interview.NewService(llmClient)
	app.AnalysisHandler = analysis.NewHandler(app.AnalysisService, analysisRepo, app.Store)
	app.InterviewHandler = interview.NewHandler(app.InterviewService)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
