// Package storage persiste rodadas analisadas para auditoria de histórico.
//
// sqlite.go — backend default, arquivo local, pure Go (sem CGo).
// Reprocessar a mesma liga/data substitui a rodada anterior: o histórico
// guarda sempre a última análise, não cada execução.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/wxamb/sportsbank/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS rodadas (
    id           TEXT PRIMARY KEY,
    liga         TEXT NOT NULL,
    data         TEXT NOT NULL,
    regime       TEXT NOT NULL,
    volatilidade TEXT NOT NULL,
    jogos        INTEGER NOT NULL DEFAULT 0,
    duplas       INTEGER NOT NULL DEFAULT 0,
    triplas      INTEGER NOT NULL DEFAULT 0,
    gerado_em    DATETIME NOT NULL,
    UNIQUE (liga, data)
);

CREATE TABLE IF NOT EXISTS prognosticos (
    rodada_id         TEXT NOT NULL REFERENCES rodadas(id) ON DELETE CASCADE,
    jogo_id           TEXT NOT NULL,
    jogo              TEXT NOT NULL,
    lambda_casa       REAL NOT NULL DEFAULT 0,
    lambda_fora       REAL NOT NULL DEFAULT 0,
    regime            TEXT NOT NULL,
    mercado_principal TEXT,
    status            TEXT,
    odd_minima        REAL NOT NULL DEFAULT 0,
    mercados          INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_rodadas_liga_data ON rodadas(liga, data);
CREATE INDEX IF NOT EXISTS idx_prog_rodada       ON prognosticos(rodada_id);
`

// SQLite implementa ports.Storage sobre um arquivo SQLite.
type SQLite struct {
	db *sql.DB
}

// NewSQLite abre (ou cria) o banco na rota dada e aplica o schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLite: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite é single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLite: apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// SaveRodada grava a rodada e os prognósticos numa transação única,
// removendo antes qualquer análise anterior da mesma liga/data.
func (s *SQLite) SaveRodada(ctx context.Context, rodada *domain.Rodada) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveRodada: begin: %w", err)
	}
	defer tx.Rollback()

	// Cascade manual: o pragma de foreign keys fica off por default.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM prognosticos WHERE rodada_id IN
			(SELECT id FROM rodadas WHERE liga = ? AND data = ?)`,
		rodada.Liga, rodada.Data,
	); err != nil {
		return fmt.Errorf("storage.SaveRodada: delete prognósticos anteriores: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rodadas WHERE liga = ? AND data = ?`,
		rodada.Liga, rodada.Data,
	); err != nil {
		return fmt.Errorf("storage.SaveRodada: delete anterior: %w", err)
	}

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO rodadas (id, liga, data, regime, volatilidade, jogos, duplas, triplas, gerado_em)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rodada.Liga, rodada.Data, rodada.Regime, rodada.Volatilidade,
		len(rodada.Jogos), len(rodada.Duplas), len(rodada.Triplas), rodada.GeradoEm.UTC(),
	); err != nil {
		return fmt.Errorf("storage.SaveRodada: insert rodada: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO prognosticos (rodada_id, jogo_id, jogo, lambda_casa, lambda_fora,
			regime, mercado_principal, status, odd_minima, mercados)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
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

// Close fecha a conexão com o banco.
func (s *SQLite) Close() error {
	return s.db.Close()
}
