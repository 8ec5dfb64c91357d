package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarketKind_Canonical(t *testing.T) {
	assert.Equal(t, "Over 2.5", MarketOver25.Canonical())
	assert.Equal(t, "Double Chance 1X", MarketDC1X.Canonical())
	assert.Equal(t, "BTTS", MarketBTTSYes.Canonical())
	assert.Equal(t, "", MarketUnknown.Canonical())
}

func TestMarketKind_Label(t *testing.T) {
	assert.Equal(t, "Under 3.5 gols", MarketUnder35.Label())
	assert.Equal(t, "BTTS (Ambas Marcam)", MarketBTTSYes.Label())
	assert.Equal(t, "Dupla Chance 1X", MarketDC1X.Label())
	assert.Equal(t, "1X2 Home", MarketHome.Label())
}

func TestFaixaProb(t *testing.T) {
	min, max := FaixaProb(0.78)
	assert.Equal(t, 76, min)
	assert.Equal(t, 78, max)
}

func TestFaixaProb_NuncaNegativa(t *testing.T) {
	min, max := FaixaProb(0.01)
	assert.Equal(t, 0, min)
	assert.Equal(t, 1, max)

	min, max = FaixaProb(0)
	assert.Equal(t, 0, min)
	assert.Equal(t, 0, max)
}

func TestOddMinimaPara(t *testing.T) {
	assert.InDelta(t, 1.25, OddMinimaPara(0.80), 1e-9)
	assert.InDelta(t, 1.54, OddMinimaPara(0.65), 1e-9)
	assert.Equal(t, 0.0, OddMinimaPara(0))
}

func TestOddExibida_PrefereOddReal(t *testing.T) {
	odd := 1.42
	r := Recommendation{OddMinima: 1.30, OddReal: &odd}
	assert.Equal(t, 1.42, r.OddExibida())

	r.OddReal = nil
	assert.Equal(t, 1.30, r.OddExibida())
}

func TestOddCombinada(t *testing.T) {
	pernas := []PernaParlay{{Odd: 1.30}, {Odd: 1.40}}
	assert.InDelta(t, 1.82, OddCombinada(pernas), 1e-9)
}

func TestOddCombinada_PernaSemOdd(t *testing.T) {
	pernas := []PernaParlay{{Odd: 1.50}, {Odd: 0}}
	assert.InDelta(t, 1.50, OddCombinada(pernas), 1e-9)
}

func TestNomeLigaExibicao(t *testing.T) {
	assert.Equal(t, "Brasileirão Série A", NomeLigaExibicao("brasileirao"))
	assert.Equal(t, "Premier League", NomeLigaExibicao("PREMIER-LEAGUE"))
	assert.Equal(t, "Liga Mx", NomeLigaExibicao("liga-mx"))
}
