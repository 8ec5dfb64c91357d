package engine

import "math"

// Volatilidades de rodada.
const (
	VolatilidadeBaixa    = "BAIXA"
	VolatilidadeModerada = "MODERADA"
	VolatilidadeAlta     = "ALTA"
)

const (
	// Média de gols acima da qual a liga é tratada como hiper-ofensiva.
	limiarHiperOfensiva = 3.0

	limiarVolBaixa    = 1.0
	limiarVolModerada = 1.5
)

// ClassificarRegimeLiga classifica o regime tático a partir da média de gols
// por jogo da liga.
func ClassificarRegimeLiga(mediaGols float64) string {
	if mediaGols > limiarHiperOfensiva {
		return RegimeHiperOfensiva
	}
	return RegimeNormal
}

// CalcularRegimeEVolatilidade classifica a rodada inteira.
//
// Regime: média das médias de liga dos jogos (fallback nos λ-totais quando a
// liga veio sem contexto). Volatilidade: desvio padrão populacional dos
// λ-totais, caindo nas médias de liga quando só há um λ. Com 0 ou 1 ponto
// não há dispersão para medir; a volatilidade fica MODERADA.
func CalcularRegimeEVolatilidade(mediasLiga, lambdasTotais []float64) (regime, volatilidade string) {
	regime = RegimeNormal
	if base := firstNonEmpty(mediasLiga, lambdasTotais); len(base) > 0 {
		regime = ClassificarRegimeLiga(media(base))
	}

	serie := lambdasTotais
	if len(serie) <= 1 {
		serie = mediasLiga
	}
	if len(serie) <= 1 {
		return regime, VolatilidadeModerada
	}

	desvio := desvioPadrao(serie)
	switch {
	case desvio < limiarVolBaixa:
		volatilidade = VolatilidadeBaixa
	case desvio < limiarVolModerada:
		volatilidade = VolatilidadeModerada
	default:
		volatilidade = VolatilidadeAlta
	}
	return regime, volatilidade
}

func firstNonEmpty(a, b []float64) []float64 {
	if len(a) > 0 {
		return a
	}
	return b
}

func media(vs []float64) float64 {
	soma := 0.0
	for _, v := range vs {
		soma += v
	}
	return soma / float64(len(vs))
}

// desvioPadrao é o desvio populacional (divisão por N, não N-1).
func desvioPadrao(vs []float64) float64 {
	m := media(vs)
	variancia := 0.0
	for _, v := range vs {
		d := v - m
		variancia += d * d
	}
	return math.Sqrt(variancia / float64(len(vs)))
}
