package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wxamb/sportsbank/config"
	"github.com/wxamb/sportsbank/internal/adapters/fixtures"
	"github.com/wxamb/sportsbank/internal/adapters/notify"
	"github.com/wxamb/sportsbank/internal/adapters/storage"
	"github.com/wxamb/sportsbank/internal/application/engine"
	"github.com/wxamb/sportsbank/internal/ports"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	liga := flag.String("liga", "", "liga a analisar (vazio = todas do arquivo)")
	data := flag.String("data", time.Now().Format("2006-01-02"), "data da rodada (YYYY-MM-DD)")
	fixturesPath := flag.String("fixtures", "", "arquivo de fixtures (sobrescreve config)")
	formato := flag.String("formato", "", "formato de saída: quadro|whatsapp (sobrescreve config)")
	semAuditoria := flag.Bool("sem-auditoria", false, "não persistir a rodada no histórico")
	verbose := flag.Bool("verbose", false, "loga em nível debug")
	logFormat := flag.String("log-format", "", "formato de log: text|json (sobrescreve config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("falha ao carregar config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *fixturesPath != "" {
		cfg.Fixtures.Path = *fixturesPath
	}
	if *formato != "" {
		cfg.Report.Formato = *formato
	}
	setupLogger(cfg.Log)

	slog.Info("prognostico iniciando",
		"config", *configPath,
		"liga", *liga,
		"data", *data,
		"fixtures", cfg.Fixtures.Path,
		"formato", cfg.Report.Formato,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	provider := fixtures.NewFile(cfg.Fixtures.Path, slog.Default())

	var store ports.Storage
	if !*semAuditoria && cfg.Storage.DSN != "" {
		store, err = abrirStorage(ctx, cfg.Storage.DSN)
		if err != nil {
			slog.Error("falha ao abrir storage", "err", err, "dsn", cfg.Storage.DSN)
			os.Exit(1)
		}
		defer store.Close()
	}

	notifier := notify.NewConsole(cfg.Report.Formato)
	eng := engine.New(slog.Default(), cfg.Pipeline.Workers)

	jogos, err := provider.Fixtures(ctx, *liga, *data)
	if err != nil {
		slog.Error("falha ao carregar fixtures", "err", err)
		os.Exit(1)
	}

	rodada, err := eng.AnalisarRodada(ctx, *liga, *data, jogos)
	if err != nil {
		slog.Error("falha na análise da rodada", "err", err)
		os.Exit(1)
	}

	if err := notifier.Notify(ctx, rodada); err != nil {
		slog.Warn("erro no notifier", "err", err)
	}

	if store != nil {
		if err := store.SaveRodada(ctx, rodada); err != nil {
			slog.Error("falha ao persistir rodada", "err", err)
			os.Exit(1)
		}
		slog.Info("rodada persistida", "liga", rodada.Liga, "data", rodada.Data)
	}

	slog.Info("prognostico finalizado",
		"jogos", len(rodada.Jogos),
		"duplas", len(rodada.Duplas),
		"triplas", len(rodada.Triplas),
	)
}

// abrirStorage escolhe o backend pelo DSN: prefixo postgres abre o banco
// compartilhado, qualquer outra coisa é rota de arquivo SQLite.
func abrirStorage(ctx context.Context, dsn string) (ports.Storage, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return storage.NewPostgres(ctx, dsn)
	}
	return storage.NewSQLite(dsn)
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
