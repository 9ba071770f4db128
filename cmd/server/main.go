package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "ludo-server/internal/api/http"
	"ludo-server/internal/api/ws"
	"ludo-server/internal/config"
	"ludo-server/internal/dispatch"
	"ludo-server/internal/room"
	"ludo-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Ludo Room Server
// @version 1.0
// @description Websocket game server for four-player Ludo rooms, plus read-only inspection endpoints
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := cfg.NewLogger()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, *cfg, log)
	hub := ws.NewHub(dispatch.New(rm, log), cfg.WS, log)
	r := httpapi.NewRouter(rm, hub, *cfg, log)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "ws_path": cfg.WSPath}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.WithField("signal", sig.String()).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown.
	hub.CloseAll()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.WithField("rooms", mem.Len()).Info("server stopped")
}
