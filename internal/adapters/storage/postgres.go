// postgres.go — backend opcional para ambientes com banco compartilhado
// (o histórico de rodadas alimenta dashboards externos).
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/wxamb/sportsbank/internal/domain"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS rodadas (
    id           TEXT PRIMARY KEY,
    liga         TEXT NOT NULL,
    data         TEXT NOT NULL,
    regime       TEXT NOT NULL,
    volatilidade TEXT NOT NULL,
    jogos        INTEGER NOT NULL DEFAULT 0,
    duplas       INTEGER NOT NULL DEFAULT 0,
    triplas      INTEGER NOT NULL DEFAULT 0,
    gerado_em    TIMESTAMPTZ NOT NULL,
    UNIQUE (liga, data)
);

CREATE TABLE IF NOT EXISTS prognosticos (
    rodada_id         TEXT NOT NULL REFERENCES rodadas(id) ON DELETE CASCADE,
    jogo_id           TEXT NOT NULL,
    jogo              TEXT NOT NULL,
    lambda_casa       DOUBLE PRECISION NOT NULL DEFAULT 0,
    lambda_fora       DOUBLE PRECISION NOT NULL DEFAULT 0,
    regime            TEXT NOT NULL,
    mercado_principal TEXT,
    status            TEXT,
    odd_minima        DOUBLE PRECISION NOT NULL DEFAULT 0,
    mercados          INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_rodadas_liga_data ON rodadas(liga, data);
CREATE INDEX IF NOT EXISTS idx_prog_rodada       ON prognosticos(rodada_id);
`

// Postgres implementa ports.Storage sobre PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres conecta no DSN dado, valida a conexão e aplica o schema.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage.NewPostgres: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewPostgres: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewPostgres: apply schema: %w", err)
	}
	return &Postgres{db: db}, nil
}

// SaveRodada grava a rodada e os prognósticos numa transação única,
// removendo antes qualquer análise anterior da mesma liga/data.
func (s *Postgres) SaveRodada(ctx context.Context, rodada *domain.Rodada) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveRodada: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rodadas WHERE liga = $1 AND data = $2`,
		rodada.Liga, rodada.Data,
	); err != nil {
		return fmt.Errorf("storage.SaveRodada: delete anterior: %w", err)
	}

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO rodadas (id, liga, data, regime, volatilidade, jogos, duplas, triplas, gerado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, rodada.Liga, rodada.Data, rodada.Regime, rodada.Volatilidade,
		len(rodada.Jogos), len(rodada.Duplas), len(rodada.Triplas), rodada.GeradoEm.UTC(),
	); err != nil {
		return fmt.Errorf("storage.SaveRodada: insert rodada: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO prognosticos (rodada_id, jogo_id, jogo, lambda_casa, lambda_fora,
			regime, mercado_principal, status, odd_minima, mercados)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
	if err != nil {
		return fmt.Errorf("storage.SaveRodada: prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range rodada.Jogos {
		d := p.Derived
		if _, err := stmt.ExecContext(ctx,
			id, p.ID, p.Rotulo(), d.LambdaHome, d.LambdaAway,
			d.Regime, d.MercadoPrincipal, string(d.Status), d.OddMinima, len(p.Mercados),
		); err != nil {
			return fmt.Errorf("storage.SaveRodada: insert prognóstico %q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveRodada: commit: %w", err)
	}
	return nil
}

// Close fecha o pool de conexões.
func (s *Postgres) Close() error {
	return s.db.Close()
}
