package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wxamb/sportsbank/internal/domain"
)

func TestDetectarSorteInsustentavel_PoucosJogos(t *testing.T) {
	s := DetectarSorteInsustentavel(domain.TeamSeasonStats{
		GamesPlayed: 4, GoalsScored: 10, XG: 5,
	})
	assert.Equal(t, SorteSemDados, s.Classification)
	assert.False(t, s.Detected)
}

func TestDetectarSorteInsustentavel_XGInvalido(t *testing.T) {
	s := DetectarSorteInsustentavel(domain.TeamSeasonStats{
		GamesPlayed: 10, GoalsScored: 10, XG: 0,
	})
	assert.Equal(t, SorteXGInvalido, s.Classification)
	assert.False(t, s.Detected)
}

func TestDetectarSorteInsustentavel_Classificacoes(t *testing.T) {
	casos := []struct {
		gols, xg float64
		esperado string
		detected bool
	}{
		{10, 9.8, SorteNormal, false},
		{10, 12, SorteNormal, false}, // azar não penaliza
		{10, 9.2, SorteLeve, true},
		{15, 10, SorteAlta, true},
	}
	for _, c := range casos {
		s := DetectarSorteInsustentavel(domain.TeamSeasonStats{
			GamesPlayed: 10, GoalsScored: c.gols, XG: c.xg,
		})
		assert.Equal(t, c.esperado, s.Classification, "gols=%.1f xg=%.1f", c.gols, c.xg)
		assert.Equal(t, c.detected, s.Detected)
	}
}

func TestAjustarLambdaPorSorte_SorteAltaSaturada(t *testing.T) {
	sorte := DetectarSorteInsustentavel(domain.TeamSeasonStats{
		GamesPlayed: 10, GoalsScored: 15, XG: 10,
	})
	assert.Equal(t, SorteAlta, sorte.Classification)

	// Discrepância 5.0 satura o ratio: λ' = 2.5 × (1 − 0.15) = 2.125.
	ajustado, meta := AjustarLambdaPorSorte(2.5, sorte)
	assert.InDelta(t, 2.125, ajustado, 0.0001)
	assert.Equal(t, 2.5, meta.LambdaOriginal)
	assert.Equal(t, 2.125, meta.LambdaAdjusted)
}

func TestAjustarLambdaPorSorte_SorteLeveProporcional(t *testing.T) {
	sorte := domain.LuckSide{Detected: true, Discrepancy: 1.0, Classification: SorteLeve}

	// ratio = 1/5 → ajuste = 0.03 → λ' = 2.0 × 0.97.
	ajustado, _ := AjustarLambdaPorSorte(2.0, sorte)
	assert.InDelta(t, 1.94, ajustado, 0.0001)
}

func TestAjustarLambdaPorSorte_NormalIntacto(t *testing.T) {
	sorte := domain.LuckSide{Classification: SorteNormal}
	ajustado, meta := AjustarLambdaPorSorte(1.8, sorte)
	assert.Equal(t, 1.8, ajustado)
	assert.Equal(t, meta.LambdaOriginal, meta.LambdaAdjusted)
}

func TestAjustarLambdaJogoPorXG_SoUmLado(t *testing.T) {
	home := domain.TeamSeasonStats{GamesPlayed: 12, GoalsScored: 20, XG: 14}
	away := domain.TeamSeasonStats{GamesPlayed: 12, GoalsScored: 10, XG: 10.2}

	lh, la, meta := AjustarLambdaJogoPorXG(2.0, 1.5, home, away)

	assert.Less(t, lh, 2.0)
	assert.Equal(t, 1.5, la)
	assert.True(t, meta.Ajustado())
	assert.True(t, meta.Home.Detected)
	assert.False(t, meta.Away.Detected)
}
