package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Devanandan1369/online-food-delivery/internal/client"
	"github.com/Devanandan1369/online-food-delivery/internal/client/ui"
	"github.com/Devanandan1369/online-food-delivery/internal/config"
	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/services/menu"
	"github.com/Devanandan1369/online-food-delivery/internal/services/order"
	"github.com/Devanandan1369/online-food-delivery/internal/storage"
)

func main() {
	var (
		mode       = flag.String("mode", "", "Service mode (menu-service, order-service, client)")
		port       = flag.Int("port", 0, "HTTP port (overrides config for service modes)")
		configPath = flag.String("config", "config.yaml", "Path to config file")
	)
	flag.Parse()

	if *mode == "" {
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	switch *mode {
	case "menu-service":
		log := logger.New(*mode)
		requestID := logger.GenerateRequestID()
		if *port != 0 {
			cfg.MenuService.Port = *port
		}
		if err := runMenuService(ctx, cfg, log); err != nil {
			log.Error("service_failed", "Menu service failed", requestID, err, nil)
			os.Exit(1)
		}
		log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
	case "order-service":
		log := logger.New(*mode)
		requestID := logger.GenerateRequestID()
		if *port != 0 {
			cfg.OrderService.Port = *port
		}
		if err := runOrderService(ctx, cfg, log); err != nil {
			log.Error("service_failed", "Order service failed", requestID, err, nil)
			os.Exit(1)
		}
		log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
	case "client":
		if err := runClient(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running client: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

// runMenuService serves the read-only restaurant catalog.
func runMenuService(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	store := storage.NewMenuStore(cfg.MenuService.DataPath, log)
	service := menu.NewService(store, log)
	handler := menu.NewHandler(service, log)

	return serveHTTP(ctx, cfg.MenuService.Port, handler.SetupRoutes(), log)
}

// runOrderService serves the order ledger.
func runOrderService(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	store := storage.NewOrderStore(cfg.OrderService.DataPath, log)
	service := order.NewService(store, log)
	handler := order.NewHandler(service, log)

	return serveHTTP(ctx, cfg.OrderService.Port, handler.SetupRoutes(), log)
}

func serveHTTP(ctx context.Context, port int, mux *http.ServeMux, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		log.Info("service_started", fmt.Sprintf("Listening on port %d", port), requestID, map[string]interface{}{
			"port": port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// runClient starts the interactive ordering UI. Log output goes to a
// file (or nowhere) so it doesn't corrupt the terminal the UI owns.
func runClient(cfg *config.Config) error {
	var logSink io.Writer = io.Discard
	if f, err := os.OpenFile("client.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer f.Close()
		logSink = f
	}
	log := logger.NewWithWriter("client", logSink)

	api := client.NewAPI(
		cfg.Client.MenuServiceURL,
		cfg.Client.OrderServiceURL,
		time.Duration(cfg.Client.CacheTTLSeconds)*time.Second,
		log,
	)

	program := tea.NewProgram(ui.New(api, log), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
