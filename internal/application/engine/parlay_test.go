package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wxamb/sportsbank/internal/domain"
)

func prognosticoParam(casa, fora, mercado string, status domain.Status, odd float64) domain.Prognostico {
	return domain.Prognostico{
		MatchInput: domain.MatchInput{HomeTeam: casa, AwayTeam: fora},
		Derived: domain.MatchDerived{
			MercadoPrincipal: mercado,
			Status:           status,
			OddMinima:        odd,
		},
	}
}

func TestIdentificarDuplas_CenarioBase(t *testing.T) {
	jogos := []domain.Prognostico{
		prognosticoParam("Cruzeiro", "Bahia", "Under 3.5 gols", domain.StatusSafe, 1.30),
		prognosticoParam("Grêmio", "Fortaleza", "Under 3.5 gols", domain.StatusSafe, 1.40),
	}

	duplas, meta := IdentificarDuplas(jogos)

	assert.Len(t, duplas, 1)
	assert.InDelta(t, 1.82, duplas[0].OddCombinada, 1e-9)
	assert.Equal(t, domain.ParlayTierSafe, meta.Tier)
	assert.Equal(t, 2, meta.PoolSize)
}

func TestIdentificarDuplas_MercadosDiferentesNaoCombinam(t *testing.T) {
	jogos := []domain.Prognostico{
		prognosticoParam("Cruzeiro", "Bahia", "Under 3.5 gols", domain.StatusSafe, 1.30),
		prognosticoParam("Grêmio", "Fortaleza", "BTTS (Ambas Marcam)", domain.StatusSafe, 1.60),
	}

	duplas, meta := IdentificarDuplas(jogos)

	assert.Empty(t, duplas)
	assert.Equal(t, domain.ParlayTierSafe, meta.Tier)
}

func TestIdentificarDuplas_NormalizacaoDeVariantes(t *testing.T) {
	// "Under 3.5" e "Under 3.5 gols" são o mesmo mercado.
	jogos := []domain.Prognostico{
		prognosticoParam("Cruzeiro", "Bahia", "Under 3.5", domain.StatusSafe, 1.30),
		prognosticoParam("Grêmio", "Fortaleza", "Under 3.5 gols", domain.StatusSafe, 1.40),
	}

	duplas, _ := IdentificarDuplas(jogos)
	assert.Len(t, duplas, 1)
}

func TestIdentificarDuplas_DegradacaoParaNeutro(t *testing.T) {
	jogos := []domain.Prognostico{
		prognosticoParam("Cruzeiro", "Bahia", "Under 3.5 gols", domain.StatusNeutro, 1.50),
		prognosticoParam("Grêmio", "Fortaleza", "Under 3.5 gols", domain.StatusNeutro, 1.45),
	}

	duplas, meta := IdentificarDuplas(jogos)

	assert.Len(t, duplas, 1)
	assert.Equal(t, domain.ParlayTierNeutro, meta.Tier)
}

func TestIdentificarDuplas_PoolInsuficiente(t *testing.T) {
	jogos := []domain.Prognostico{
		prognosticoParam("Cruzeiro", "Bahia", "Under 3.5 gols", domain.StatusSafe, 1.30),
		prognosticoParam("Grêmio", "Fortaleza", "", "", 0),
	}

	duplas, meta := IdentificarDuplas(jogos)

	assert.Empty(t, duplas)
	assert.Equal(t, 1, meta.SemMercado)
	assert.Equal(t, domain.ParlayTierSafe, meta.Tier)
	assert.Equal(t, 1, meta.PoolSize)
}

func TestIdentificarDuplas_Top4MaisBaratas(t *testing.T) {
	var jogos []domain.Prognostico
	for i, odd := range []float64{1.50, 1.20, 1.80, 1.10, 1.30} {
		jogos = append(jogos, prognosticoParam(
			fmt.Sprintf("Time%d", i), fmt.Sprintf("Rival%d", i),
			"Under 3.5 gols", domain.StatusSafe, odd,
		))
	}

	duplas, _ := IdentificarDuplas(jogos)

	// 5 jogos → 10 pares; só as 4 de menor odd combinada sobrevivem.
	assert.Len(t, duplas, 4)
	for i := 1; i < len(duplas); i++ {
		assert.LessOrEqual(t, duplas[i-1].OddCombinada, duplas[i].OddCombinada)
	}
	// Par mais barato: 1.10 × 1.20 = 1.32.
	assert.InDelta(t, 1.32, duplas[0].OddCombinada, 1e-9)
}

func TestIdentificarTriplas_CenarioBase(t *testing.T) {
	jogos := []domain.Prognostico{
		prognosticoParam("A", "B", "Under 3.5 gols", domain.StatusSafe, 1.20),
		prognosticoParam("C", "D", "Under 3.5 gols", domain.StatusSafe, 1.30),
		prognosticoParam("E", "F", "Under 3.5 gols", domain.StatusSafe, 1.40),
	}

	triplas, meta := IdentificarTriplas(jogos)

	assert.Len(t, triplas, 1)
	assert.InDelta(t, 2.18, triplas[0].OddCombinada, 0.01)
	assert.Equal(t, domain.ParlayTierSafe, meta.Tier)
}

func TestIdentificarTriplas_PoolInsuficiente(t *testing.T) {
	jogos := []domain.Prognostico{
		prognosticoParam("A", "B", "Under 3.5 gols", domain.StatusSafe, 1.20),
		prognosticoParam("C", "D", "Under 3.5 gols", domain.StatusSafe, 1.30),
	}

	triplas, meta := IdentificarTriplas(jogos)

	assert.Empty(t, triplas)
	assert.Equal(t, 2, meta.PoolSize)
}

func TestSelecionarPoolParlay_TierComMercado(t *testing.T) {
	// Status fora do vocabulário: nem SAFE nem NEUTRO, mas tem mercado.
	jogos := []domain.Prognostico{
		prognosticoParam("A", "B", "Under 3.5 gols", "EXPERIMENTAL", 1.20),
		prognosticoParam("C", "D", "Under 3.5 gols", "EXPERIMENTAL", 1.30),
	}

	duplas, meta := IdentificarDuplas(jogos)

	assert.Len(t, duplas, 1)
	assert.Equal(t, domain.ParlayTierComMercado, meta.Tier)
}

func TestSelecionarPoolParlay_SemOddContabilizado(t *testing.T) {
	jogos := []domain.Prognostico{
		prognosticoParam("A", "B", "Under 3.5 gols", domain.StatusSafe, 0),
		prognosticoParam("C", "D", "Under 3.5 gols", domain.StatusSafe, 1.30),
	}

	duplas, meta := IdentificarDuplas(jogos)

	assert.Equal(t, 1, meta.SemOdd)
	// Perna sem odd entra com 1.0 no produto.
	assert.Len(t, duplas, 1)
	assert.InDelta(t, 1.30, duplas[0].OddCombinada, 1e-9)
}
