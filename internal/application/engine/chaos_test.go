package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wxamb/sportsbank/internal/domain"
)

func TestCoeficienteVariacao(t *testing.T) {
	// média 2, desvio populacional ≈ 0.8165 → CV ≈ 0.408.
	cv := CoeficienteVariacao([]float64{1, 2, 3})
	assert.InDelta(t, 0.408, cv, 0.001)
}

func TestCoeficienteVariacao_SerieCurta(t *testing.T) {
	assert.Equal(t, 0.0, CoeficienteVariacao(nil))
	assert.Equal(t, 0.0, CoeficienteVariacao([]float64{1.5}))
}

func TestCoeficienteVariacao_MediaZero(t *testing.T) {
	assert.True(t, math.IsInf(CoeficienteVariacao([]float64{-1, 1}), 1))
	assert.Equal(t, 0.0, CoeficienteVariacao([]float64{0, 0, 0}))
}

func TestDetectarCaosTime_Classificacoes(t *testing.T) {
	estavel := DetectarCaosTime(domain.TeamSeasonStats{
		XGPerGame: []float64{1.5, 1.6, 1.4, 1.5, 1.5},
	})
	assert.Equal(t, CaosEstavel, estavel.Classification)
	assert.False(t, estavel.Detected)
	assert.Equal(t, "xg", estavel.Method)

	caotico := DetectarCaosTime(domain.TeamSeasonStats{
		XGPerGame: []float64{0.2, 3.0, 0.5, 2.8, 0.1},
	})
	assert.Equal(t, CaosCaos, caotico.Classification)
	assert.True(t, caotico.Detected)
}

func TestDetectarCaosTime_FallbackParaGols(t *testing.T) {
	// Série de xG curta demais: cai na série de gols.
	s := DetectarCaosTime(domain.TeamSeasonStats{
		XGPerGame:    []float64{1.0, 1.2},
		GoalsPerGame: []float64{1, 1, 2, 1},
	})
	assert.Equal(t, "goals", s.Method)
	assert.NotEqual(t, CaosSemDados, s.Classification)
}

func TestDetectarCaosTime_SemDados(t *testing.T) {
	s := DetectarCaosTime(domain.TeamSeasonStats{})
	assert.Equal(t, CaosSemDados, s.Classification)
	assert.Equal(t, "none", s.Method)
	assert.False(t, s.Detected)
}

func TestDetectarCaosJogo_BastaUmLado(t *testing.T) {
	home := domain.TeamSeasonStats{XGPerGame: []float64{0.2, 3.0, 0.5, 2.8, 0.1}}
	away := domain.TeamSeasonStats{XGPerGame: []float64{1.5, 1.6, 1.4, 1.5, 1.5}}

	meta := DetectarCaosJogo(home, away)
	assert.True(t, meta.Caotico())
	assert.False(t, meta.AmbosCaoticos())
}

func TestPenalidadeConfianca(t *testing.T) {
	caotico := domain.ChaosMeta{Home: domain.ChaosSide{Detected: true}}
	assert.Equal(t, 0.5, PenalidadeConfianca(caotico))
	assert.Equal(t, 1.0, PenalidadeConfianca(domain.ChaosMeta{}))
}
