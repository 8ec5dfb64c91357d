package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxamb/sportsbank/internal/domain"
)

func rodadaTeste() *domain.Rodada {
	return &domain.Rodada{
		Liga:         "brasileirao",
		Data:         "2026-08-30",
		GeradoEm:     time.Now(),
		Regime:       "NORMAL",
		Volatilidade: "BAIXA",
		Jogos: []domain.Prognostico{
			{
				MatchInput: domain.MatchInput{ID: "j1", HomeTeam: "Cruzeiro", AwayTeam: "Bahia"},
				Derived: domain.MatchDerived{
					LambdaHome:       1.387,
					LambdaAway:       0.9,
					Regime:           "NORMAL",
					MercadoPrincipal: "Under 3.5 gols",
					Status:           domain.StatusSafe,
					OddMinima:        1.42,
				},
				Mercados: []domain.Recommendation{{Kind: domain.MarketUnder35}},
			},
		},
	}
}

func abrirTeste(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(t.TempDir() + "/rodadas.db")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_SaveRodada(t *testing.T) {
	s := abrirTeste(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRodada(ctx, rodadaTeste()))

	var rodadas, prognosticos int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM rodadas`).Scan(&rodadas))
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM prognosticos`).Scan(&prognosticos))
	assert.Equal(t, 1, rodadas)
	assert.Equal(t, 1, prognosticos)

	var mercado string
	require.NoError(t, s.db.QueryRow(
		`SELECT mercado_principal FROM prognosticos WHERE jogo_id = 'j1'`).Scan(&mercado))
	assert.Equal(t, "Under 3.5 gols", mercado)
}

func TestSQLite_ReprocessarSubstitui(t *testing.T) {
	s := abrirTeste(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRodada(ctx, rodadaTeste()))

	segunda := rodadaTeste()
	segunda.Regime = "HIPER-OFENSIVA"
	require.NoError(t, s.SaveRodada(ctx, segunda))

	var rodadas int
	var regime string
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM rodadas`).Scan(&rodadas))
	require.NoError(t, s.db.QueryRow(`SELECT regime FROM rodadas`).Scan(&regime))
	assert.Equal(t, 1, rodadas)
	assert.Equal(t, "HIPER-OFENSIVA", regime)
}
