package notify_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxamb/sportsbank/internal/adapters/notify"
	"github.com/wxamb/sportsbank/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func rodadaTeste() *domain.Rodada {
	return &domain.Rodada{
		Liga:         "brasileirao",
		Data:         "2026-08-30",
		Regime:       "NORMAL",
		Volatilidade: "BAIXA",
		Jogos: []domain.Prognostico{
			{
				MatchInput: domain.MatchInput{ID: "j1", HomeTeam: "Cruzeiro", AwayTeam: "Bahia"},
				Derived: domain.MatchDerived{
					LambdaHome:       1.39,
					LambdaAway:       0.90,
					HomeWinProb:      46.5,
					DrawProb:         29.1,
					AwayWinProb:      24.5,
					Over25Prob:       40.0,
					BTTSProb:         44.5,
					Regime:           "NORMAL",
					MercadoPrincipal: "Under 3.5 gols",
					Status:           domain.StatusSafeStar,
					OddMinima:        1.42,
				},
				Mercados: []domain.Recommendation{{
					Kind:      domain.MarketUnder35,
					Mercado:   "Under 3.5 gols",
					Status:    domain.StatusSafeStar,
					ProbMin:   78,
					ProbMax:   80,
					OddMinima: 1.25,
					OddReal:   fptr(1.35),
					Alerta:    "Odd baixa",
				}},
			},
		},
		Duplas: []domain.Dupla{{
			Pernas: [2]domain.PernaParlay{
				{Jogo: "Cruzeiro x Bahia", Mercado: "Under 3.5 gols", Odd: 1.30},
				{Jogo: "Grêmio x Fortaleza", Mercado: "Under 3.5 gols", Odd: 1.40},
			},
			OddCombinada: 1.82,
		}},
		DuplasMeta:  domain.ParlayMeta{Tier: domain.ParlayTierSafe, PoolSize: 2},
		TriplasMeta: domain.ParlayMeta{Tier: domain.ParlayTierSafe, PoolSize: 2},
	}
}

func TestConsole_Quadro(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, notify.FormatoQuadro)

	require.NoError(t, n.Notify(context.Background(), rodadaTeste()))

	out := buf.String()
	assert.Contains(t, out, "Brasileirão Série A")
	assert.Contains(t, out, "Cruzeiro x Bahia")
	assert.Contains(t, out, "Under 3.5 gols")
	assert.Contains(t, out, "SAFE*")
	assert.Contains(t, out, "Odd baixa")
	// 0.80 × 1.35 − 1 = +8% de valor esperado.
	assert.Contains(t, out, "EV +8% à odd 1.35")
	assert.Contains(t, out, "1.82")
	assert.Contains(t, out, "DUPLAS SUGERIDAS")
	// Sem triplas: o diagnóstico do pool aparece no lugar.
	assert.Contains(t, out, "nenhuma tripla elegível")
}

func TestConsole_WhatsApp(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, notify.FormatoWhatsApp)

	require.NoError(t, n.Notify(context.Background(), rodadaTeste()))

	out := buf.String()
	assert.Contains(t, out, "*⚽ PROGNÓSTICOS — Brasileirão Série A*")
	assert.Contains(t, out, "*Cruzeiro x Bahia*")
	assert.Contains(t, out, "prob 78-80%")
	assert.Contains(t, out, "odd mín 1.42")
	assert.Contains(t, out, "*🎯 Duplas*")
}

func TestConsole_RodadaVazia(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, notify.FormatoQuadro)

	require.NoError(t, n.Notify(context.Background(), &domain.Rodada{}))
	assert.Contains(t, buf.String(), "Nenhum jogo analisado")
}
