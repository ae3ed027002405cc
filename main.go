package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/rahalrsh/point-of-sale/internal/db"
	"github.com/rahalrsh/point-of-sale/internal/handlers"
)

func main() {

	db.Init()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// ── api v1 ──
	api := r.Group("/api/v1")
	{
		api.POST("/items", handlers.CreateItem)
		api.GET("/items", handlers.GetAllItems)
		api.GET("/items/:id", handlers.GetItemByID)
		api.PUT("/items/:id", handlers.UpdateItemByID)
		api.DELETE("/items/:id", handlers.DeleteItemByID)

		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders/:id", handlers.GetOrderByID)
	}

	srv := &http.Server{
		Addr:    ":" + getEnv("PORT", "5000"),
		Handler: r,
	}

	listenAndServe(srv)
}

// listenAndServe runs the server and shuts it down gracefully on
// SIGINT/SIGTERM, waiting for in-flight requests to finish.
func listenAndServe(srv *http.Server) {

	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(func() error {
		log.Printf("server started and is listening at %s...\n", srv.Addr)

		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		return nil
	})

	errGrp.Go(func() error {
		<-shutdownCtx.Done()
		log.Println("server is gracefully shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server failed to shutdown gracefully: %w", err)
		}

		return nil
	})

	if err := errGrp.Wait(); err != nil {
		log.Fatal(err.Error())
	}

	log.Println("server has been gracefully shutdown")
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
