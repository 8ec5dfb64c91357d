package engine

import (
	"math"

	"github.com/wxamb/sportsbank/internal/domain"
)

// Classificações do filtro de sorte xG.
const (
	SorteNormal     = "NORMAL"
	SorteLeve       = "SORTE_LEVE"
	SorteAlta       = "SORTE_ALTA"
	SorteSemDados   = "INSUFFICIENT_DATA"
	SorteXGInvalido = "INVALID_XG"
)

const (
	// Mínimo de jogos para a discrepância gols-xG significar algo.
	minJogosSorte = 5
	// Discrepância de referência: ajuste satura em 5 gols acima do xG.
	discrepanciaMax = 5.0
	// Redução máxima de λ quando a sorte satura.
	ajusteMaxSorte = 0.15
)

// DetectarSorteInsustentavel mede quanto um time marcou acima do xG na
// temporada e classifica a sustentabilidade do ataque.
//
// discrepância = gols_marcados - xG. Só positiva (marcar MENOS que o xG é
// azar, não sorte, e não penaliza).
func DetectarSorteInsustentavel(t domain.TeamSeasonStats) domain.LuckSide {
	if t.GamesPlayed < minJogosSorte {
		return domain.LuckSide{Classification: SorteSemDados}
	}
	if t.XG <= 0 {
		return domain.LuckSide{Classification: SorteXGInvalido}
	}

	disc := t.GoalsScored - t.XG
	side := domain.LuckSide{Discrepancy: round2(disc)}
	switch {
	case disc <= 0.5:
		side.Classification = SorteNormal
	case disc <= 1.0:
		side.Classification = SorteLeve
		side.Detected = true
	default:
		side.Classification = SorteAlta
		side.Detected = true
	}
	return side
}

// AjustarLambdaPorSorte reduz o λ de um time com sorte insustentável.
//
// ratio  = min(discrepância / 5.0, 1.0)
// ajuste = 0.15 × ratio
// λ'     = λ × (1 - ajuste)
//
// Sem sorte detectada, devolve o λ intacto.
func AjustarLambdaPorSorte(lambda float64, sorte domain.LuckSide) (float64, domain.LuckSide) {
	sorte.LambdaOriginal = round3(lambda)
	sorte.LambdaAdjusted = sorte.LambdaOriginal
	if !sorte.Detected {
		return lambda, sorte
	}
	ratio := math.Min(sorte.Discrepancy/discrepanciaMax, 1.0)
	ajustado := lambda * (1 - ajusteMaxSorte*ratio)
	sorte.LambdaAdjusted = round3(ajustado)
	return ajustado, sorte
}

// AjustarLambdaJogoPorXG aplica o filtro de sorte aos dois lados do jogo.
func AjustarLambdaJogoPorXG(lambdaHome, lambdaAway float64, home, away domain.TeamSeasonStats) (float64, float64, domain.LuckMeta) {
	sorteHome := DetectarSorteInsustentavel(home)
	sorteAway := DetectarSorteInsustentavel(away)

	lambdaHome, sorteHome = AjustarLambdaPorSorte(lambdaHome, sorteHome)
	lambdaAway, sorteAway = AjustarLambdaPorSorte(lambdaAway, sorteAway)

	return lambdaHome, lambdaAway, domain.LuckMeta{Home: sorteHome, Away: sorteAway}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
