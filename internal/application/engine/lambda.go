// Package engine implementa o pipeline de prognósticos: cálculo de lambdas,
// filtro de sorte xG, detector de caos, probabilidades Poisson, seleção de
// mercados por regime e combinação de duplas/triplas.
package engine

import (
	"github.com/wxamb/sportsbank/internal/domain"
)

// Regimes táticos de liga reconhecidos pelo calculador de lambda.
const (
	RegimeNormal        = "NORMAL"
	RegimeDefensiva     = "DEFENSIVA"
	RegimeHiperOfensiva = "HIPER-OFENSIVA"
)

// PesosLambda pondera temporada vs forma recente no ataque esperado.
type PesosLambda struct {
	Temporada float64
	Ultimos5  float64
}

var pesosPorRegime = map[string]PesosLambda{
	RegimeNormal:        {Temporada: 0.60, Ultimos5: 0.40},
	RegimeHiperOfensiva: {Temporada: 0.30, Ultimos5: 0.70},
}

// Limites do λ dinâmico. O método legado usa teto mais conservador porque
// não tem o amortecedor do fator de defesa normalizado.
const (
	lambdaMin       = 0.2
	lambdaMax       = 4.5
	lambdaMaxLegado = 3.5

	// Piso do fator de defesa em regime hiper-ofensivo: defesas ruins não
	// podem deflacionar o ataque esperado do adversário.
	fatorDefesaMinHiper = 0.90

	// Média de gols default quando a liga veio sem contexto.
	mediaLigaDefault = 2.7
)

// PesosRegime devolve os pesos temporada/últimos-5 do regime. Regime
// desconhecido cai em NORMAL com ok = false para o chamador logar.
func PesosRegime(regime string) (PesosLambda, bool) {
	if p, ok := pesosPorRegime[regime]; ok {
		return p, true
	}
	return pesosPorRegime[RegimeNormal], false
}

// CalcularLambdaJogo calcula o λ esperado dos dois lados de um jogo usando o
// método dinâmico ponderado por regime.
//
// Para cada lado:
//
//	ataque = peso_temp × média_marcados(split) + peso_ult5 × média_últimos5
//	defesa = média_sofridos_adversário(split) / (média_liga / 2)
//	λ      = clamp(ataque × defesa, 0.2, 4.5)
//
// Splits ausentes caem na média geral; time sem dado nenhum de ataque cai em
// média_liga / 2 (o palpite neutro da liga).
func CalcularLambdaJogo(home, away domain.TeamSeasonStats, liga domain.LeagueContext, regime string) (lambdaHome, lambdaAway float64) {
	mediaLiga := liga.AvgGoalsPerGame
	if mediaLiga <= 0 {
		mediaLiga = mediaLigaDefault
	}
	lambdaHome = calcularLambdaDinamico(home, away, mediaLiga, regime, true)
	lambdaAway = calcularLambdaDinamico(away, home, mediaLiga, regime, false)
	return lambdaHome, lambdaAway
}

func calcularLambdaDinamico(equipe, adversario domain.TeamSeasonStats, mediaLiga float64, regime string, mandante bool) float64 {
	pesos, _ := PesosRegime(regime)

	ataqueTemp := amplitudeAtaque(equipe, mandante)
	ataqueRecente := ataqueTemp
	if equipe.GoalsScoredAvgLast5 != nil && *equipe.GoalsScoredAvgLast5 > 0 {
		ataqueRecente = *equipe.GoalsScoredAvgLast5
	}
	if ataqueTemp <= 0 && ataqueRecente <= 0 {
		// Sem dado de ataque: palpite neutro da liga.
		ataqueTemp = mediaLiga / 2
		ataqueRecente = ataqueTemp
	}
	ataque := pesos.Temporada*ataqueTemp + pesos.Ultimos5*ataqueRecente

	sofridos := amplitudeDefesa(adversario, !mandante)
	fatorDefesa := 1.0
	if sofridos > 0 {
		fatorDefesa = sofridos / (mediaLiga / 2)
	}
	if regime == RegimeHiperOfensiva && fatorDefesa < fatorDefesaMinHiper {
		fatorDefesa = fatorDefesaMinHiper
	}

	return clamp(ataque*fatorDefesa, lambdaMin, lambdaMax)
}

// amplitudeAtaque devolve a média de gols marcados no split do mando, com
// fallback na média geral.
func amplitudeAtaque(t domain.TeamSeasonStats, mandante bool) float64 {
	if mandante && t.GoalsScoredAvgHome != nil && *t.GoalsScoredAvgHome > 0 {
		return *t.GoalsScoredAvgHome
	}
	if !mandante && t.GoalsScoredAvgAway != nil && *t.GoalsScoredAvgAway > 0 {
		return *t.GoalsScoredAvgAway
	}
	return t.GoalsScoredAvgOverall
}

// amplitudeDefesa devolve a média de gols sofridos no split do mando, com
// fallback na média geral. Retorna 0 quando o time não tem dado de defesa.
func amplitudeDefesa(t domain.TeamSeasonStats, mandante bool) float64 {
	if mandante && t.GoalsConcededAvgHome != nil && *t.GoalsConcededAvgHome > 0 {
		return *t.GoalsConcededAvgHome
	}
	if !mandante && t.GoalsConcededAvgAway != nil && *t.GoalsConcededAvgAway > 0 {
		return *t.GoalsConcededAvgAway
	}
	if t.GoalsConcededAvgOverall != nil && *t.GoalsConcededAvgOverall > 0 {
		return *t.GoalsConcededAvgOverall
	}
	return 0
}

// CalcularLambdaLegado é o método de três fatores mantido para comparação:
// λ = média_liga × fator_ataque × fator_defesa, clamp em [0.2, 3.5].
//
// Os fatores são as médias do time normalizadas pela metade da média da liga.
func CalcularLambdaLegado(ataque, defesaAdversario, mediaLiga float64) float64 {
	if mediaLiga <= 0 {
		mediaLiga = mediaLigaDefault
	}
	meia := mediaLiga / 2
	fatorAtaque := 1.0
	if ataque > 0 {
		fatorAtaque = ataque / meia
	}
	fatorDefesa := 1.0
	if defesaAdversario > 0 {
		fatorDefesa = defesaAdversario / meia
	}
	return clamp(meia*fatorAtaque*fatorDefesa, lambdaMin, lambdaMaxLegado)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
