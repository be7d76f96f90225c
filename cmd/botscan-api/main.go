package main

import (
	"context"
	"time"

	"botscan/internal/modkit/repokit"
	"botscan/internal/platform/config"
	"botscan/internal/platform/logger"
	phttp "botscan/internal/platform/net/http"
	"botscan/internal/platform/store"

	"botscan/internal/adapters/llm"
	"botscan/internal/services/analyze/repo"
	"botscan/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	llmCfg := root.Prefix("LLM_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "botscan-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when the database is unreachable
	repokit.MustGuard(context.Background(), st)

	// migrate-on-boot so a fresh database is usable immediately
	if err := repo.EnsureSchema(context.Background(), st.PG); err != nil {
		l.Panic().Err(err).Msg("schema bootstrap failed")
	}

	// remote judge; nil means heuristics-only mode
	judge, err := llm.New(llm.Config{
		Provider:        llmCfg.MayString("PROVIDER", ""),
		AnthropicKey:    llmCfg.MayString("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  llmCfg.MayString("ANTHROPIC_MODEL", ""),
		OpenRouterKey:   llmCfg.MayString("OPENROUTER_API_KEY", ""),
		OpenRouterModel: llmCfg.MayString("OPENROUTER_MODEL", ""),
		Timeout:         llmCfg.MayDuration("TIMEOUT", 20*time.Second),
	})
	if err != nil {
		l.Panic().Err(err).Msg("llm provider configuration invalid")
	}
	if judge == nil {
		l.Warn().Msg("no llm provider configured, running heuristics-only")
	} else {
		l.Info().Str("provider", judge.Name()).Str("model", judge.Model()).Msg("llm provider ready")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config: root,
			Store:  st,
			Logger: l,
			Judge:  judge,
			APIKey: apiCfg.MayString("KEY", ""),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
