package engine

import (
	"math"

	"github.com/wxamb/sportsbank/internal/domain"
)

// Classificações do detector de caos.
const (
	CaosEstavel  = "ESTAVEL"
	CaosModerado = "MODERADO"
	CaosCaos     = "CAOS"
	CaosSemDados = "INSUFFICIENT_DATA"
)

const (
	// Série mínima para preferir xG a gols.
	minAmostrasXG = 5
	// Mínimo absoluto de pontos para calcular CV.
	minAmostrasCV = 2

	limiarCVEstavel  = 0.30
	limiarCVModerado = 0.45

	// Penalidade multiplicativa de confiança para jogo caótico.
	penalidadeCaos = 0.5
)

// CoeficienteVariacao devolve stdev/média (populacional) de uma série.
// Menos de 2 pontos → 0; média 0 com dispersão → +Inf (volatilidade máxima).
func CoeficienteVariacao(valores []float64) float64 {
	if len(valores) < minAmostrasCV {
		return 0
	}
	m := media(valores)
	desvio := desvioPadrao(valores)

	if m == 0 {
		if desvio == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return desvio / m
}

// DetectarCaosTime classifica a volatilidade de performance de um time.
// Prefere a série de xG quando ela tem amostra suficiente; senão cai na
// série de gols. Sem série utilizável, devolve INSUFFICIENT_DATA.
func DetectarCaosTime(t domain.TeamSeasonStats) domain.ChaosSide {
	serie := t.XGPerGame
	metodo := "xg"
	if len(serie) < minAmostrasXG {
		serie = t.GoalsPerGame
		metodo = "goals"
	}
	if len(serie) < minAmostrasCV {
		return domain.ChaosSide{Classification: CaosSemDados, Method: "none"}
	}

	cv := CoeficienteVariacao(serie)
	side := domain.ChaosSide{CV: round3(cv), Method: metodo}
	switch {
	case cv <= limiarCVEstavel:
		side.Classification = CaosEstavel
	case cv <= limiarCVModerado:
		side.Classification = CaosModerado
	default:
		side.Classification = CaosCaos
		side.Detected = true
	}
	return side
}

// DetectarCaosJogo roda o detector nos dois lados do jogo.
func DetectarCaosJogo(home, away domain.TeamSeasonStats) domain.ChaosMeta {
	return domain.ChaosMeta{
		Home: DetectarCaosTime(home),
		Away: DetectarCaosTime(away),
	}
}

// PenalidadeConfianca devolve o multiplicador de confiança de um jogo:
// 0.5 para jogo caótico (qualquer lado), 1.0 caso contrário.
func PenalidadeConfianca(caos domain.ChaosMeta) float64 {
	if caos.Caotico() {
		return penalidadeCaos
	}
	return 1.0
}
