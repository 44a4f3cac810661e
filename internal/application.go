package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/config"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/repository"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/service"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/session"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-sessions/transport/rest"
	"github.com/rocketscienceinc/tictactoe-sessions/transport/websocket"
)

const shutdownTimeout = 10 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := sqlite.New(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	priority, err := tictactoe.ParsePriority(conf.Computer.Priority)
	if err != nil {
		return fmt.Errorf("invalid computer priority: %w", err)
	}

	sessionRepo := repository.NewSessionRepository(sqliteStorage.Connection)
	gameRepo := repository.NewGameRepository(sqliteStorage.Connection)
	gameEvents := repository.NewGameEvents(redisStorage.Connection)
	tokens := session.NewHandler(repository.NewKeyValueRepository(redisStorage.Connection, conf.Redis.TokenTTL))

	gameManager := usecase.NewGameManager(logger, sessionRepo, gameRepo, gameEvents, usecase.Rules{
		OwnerSymbol:    entity.Symbol(conf.TicTacToe.PlayerSymbols[0]),
		OpponentSymbol: entity.Symbol(conf.TicTacToe.PlayerSymbols[1]),
		ComputerName:   conf.TicTacToe.ComputerName,
		Strategy:       tictactoe.NewStrategy(priority, tictactoe.RandomPicker()),
	})

	invites := service.NewInviteService(conf.PublicURL, newMailer(logger, conf))

	httpServer := rest.NewServer(logger, conf.HTTPPort,
		rest.NewSessionHandler(logger, gameManager, tokens, invites),
		rest.NewGameHandler(logger, gameManager, tokens),
	)
	wsServer := websocket.New(logger, conf.SocketPort, gameManager, tokens, gameEvents)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		err = fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		err = fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not shut down HTTP server", "error", shutdownErr)
	}

	if shutdownErr := wsServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not shut down WebSocket server", "error", shutdownErr)
	}

	return err
}

func newMailer(logger *slog.Logger, conf *config.Config) service.Mailer {
	if !conf.SMTP.Enabled() {
		return service.NewLogMailer(logger.With("component", "mailer"))
	}

	return service.NewSMTPMailer(conf.SMTP.GetSMTPAddr(), conf.SMTP.Username, conf.SMTP.Password, conf.SMTP.From)
}
