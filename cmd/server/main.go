package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpadapter "resume-tailor/internal/adapter/http"
	"resume-tailor/internal/adapter/repository"
	"resume-tailor/internal/config"
	"resume-tailor/internal/usecase"
	"resume-tailor/pkg/ai"
	"resume-tailor/pkg/infrastructure"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	appCfg := config.App()
	mongoCfg := config.Mongo()
	llmCfg := config.LLM()
	authCfg := config.Auth()
	renderCfg := config.Renderer()

	ctx := context.Background()
	db, err := repository.Connect(ctx, mongoCfg.URI, mongoCfg.Database, mongoCfg.Timeout)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}

	users := repository.NewUserRepo(db)
	templates := repository.NewTemplateRepo(db)
	tailored := repository.NewTailoredResumeRepo(db)
	built := repository.NewBuiltResumeRepo(db)
	letters := repository.NewCoverLetterRepo(db)
	artifacts := repository.NewArtifactRepo(db)

	if err := templates.EnsureDefault(ctx); err != nil {
		log.Fatalf("seed default template: %v", err)
	}

	llm := ai.NewClient(ai.Config{
		BaseURL:    llmCfg.BaseURL,
		APIKey:     llmCfg.APIKey,
		Model:      llmCfg.Model,
		Timeout:    llmCfg.Timeout,
		RetryCount: llmCfg.RetryCount,
	})
	chrome := infrastructure.NewChromeRenderer(renderCfg.ChromePath, renderCfg.Timeout)

	resumeSvc := usecase.NewResumeService(
		users, templates, tailored, built, artifacts, llm, chrome,
		appCfg.BaseResumeDir, appCfg.ArtifactsDir,
	)
	letterSvc := usecase.NewCoverLetterService(users, letters, llm)

	app := fiber.New(fiber.Config{
		AppName:   "resume-tailor",
		BodyLimit: 20 * 1024 * 1024, // resume PDF uploads
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: appCfg.CORSOrigins}))
	app.Use(limiter.New(limiter.Config{Max: 120}))
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/health",
		ReadinessEndpoint: "/readyz",
	}))

	httpadapter.RegisterRoutes(app, httpadapter.Handlers{
		Auth:        httpadapter.NewAuthHandler(users, authCfg.JWTSecret, authCfg.TokenTTL),
		Resume:      httpadapter.NewResumeHandler(resumeSvc, tailored, built, artifacts),
		Templates:   httpadapter.NewTemplateHandler(templates),
		CoverLetter: httpadapter.NewCoverLetterHandler(letterSvc),
	}, authCfg.JWTSecret)

	log.Printf("listening on :%s", appCfg.Port)
	if err := app.Listen(":" + appCfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
