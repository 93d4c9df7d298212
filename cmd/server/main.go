package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"eodly/internal/config"
	"eodly/internal/handler"
	"eodly/internal/logger"
	"eodly/internal/middleware"
	"eodly/internal/service"
	"eodly/internal/store"
	"eodly/internal/view"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	st, err := store.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		slog.Error("storage open failed", "err", err)
		os.Exit(1)
	}

	dir := service.NewDirectory(st)
	journal := service.NewJournal(st, dir)
	if purged := journal.PurgeExpired(time.Now()); purged > 0 {
		slog.Info("startup purge", "reports", purged)
	}
	polisher := service.NewGeminiPolisher(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	router := view.NewRouter(func() bool { return dir.Current() != nil })

	authH := handler.NewAuthHandler(dir, router)
	reportH := handler.NewReportHandler(journal)
	polishH := handler.NewPolishHandler(polisher, journal)
	exportH := handler.NewExportHandler(journal)
	viewH := handler.NewViewHandler(router)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/signin", authH.SignIn)
	r.POST("/api/signup", authH.SignUp)

	api := r.Group("/api", middleware.JWTAuth())
	api.POST("/signout", authH.SignOut)
	api.GET("/profile", authH.Profile)
	api.PUT("/profile", authH.UpdateProfile)
	api.GET("/users", authH.Users)
	api.GET("/theme", authH.Theme)
	api.PUT("/theme", authH.SetTheme)

	api.GET("/view", viewH.Current)
	api.POST("/view", viewH.Navigate)

	api.POST("/reports", reportH.Create)
	api.GET("/reports", reportH.Active)
	api.GET("/reports/submitted", reportH.Submitted)
	api.GET("/reports/history", reportH.History)
	api.GET("/reports/drafts", reportH.Drafts)
	api.POST("/reports/:id/trash", reportH.MoveToTrash)
	api.POST("/reports/:id/restore", reportH.Restore)
	api.GET("/trash", reportH.Trash)
	api.DELETE("/trash", reportH.EmptyTrash)
	api.GET("/stats", reportH.Stats)

	api.POST("/polish", polishH.Polish)
	api.GET("/summary", polishH.Summarize)

	api.GET("/export/csv", exportH.CSV)
	api.GET("/export/xlsx", exportH.XLSX)
	api.GET("/export/html", exportH.PrintableHTML)
	api.GET("/export/summary", exportH.SummaryHTML)
	api.GET("/export/mail-link", exportH.MailLink)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
