package domain

import "math"

// PoissonPMF devolve a probabilidade de exatamente k gols dado o λ esperado.
//
// Fórmula: P(X = k) = (λ^k × e^-λ) / k!
//
// Retorna 0 para k negativo (entrada degenerada, não um erro). λ <= 0
// concentra toda a massa em zero gols: pmf(0) = 1, pmf(k>0) = 0.
func PoissonPMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	logP := float64(k)*math.Log(lambda) - lambda - logFactorial(k)
	return math.Exp(logP)
}

// PoissonCDF devolve P(X <= k): a probabilidade acumulada de até k gols.
// Base dos mercados Under (Under 3.5 = CDF(3, λ_total)).
func PoissonCDF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		return 1
	}
	total := 0.0
	for i := 0; i <= k; i++ {
		total += PoissonPMF(i, lambda)
	}
	return total
}

// logFactorial usa Lgamma para manter estabilidade numérica em k alto.
func logFactorial(k int) float64 {
	v, _ := math.Lgamma(float64(k) + 1)
	return v
}

// ImpliedProbs converte odds decimais 1X2 em probabilidades implícitas
// normalizadas para somar 100 (remove o overround da casa).
//
// Odd ausente (nil) ou <= 1 contribui 0; as válidas são normalizadas entre
// si. Com as três inválidas retorna (0, 0, 0). Sem arredondamento: a soma
// das válidas é exatamente 100.
func ImpliedProbs(oddHome, oddDraw, oddAway *float64) (home, draw, away float64) {
	raw := func(o *float64) float64 {
		if o == nil || *o <= 1 {
			return 0
		}
		return 1 / *o
	}
	rawH, rawD, rawA := raw(oddHome), raw(oddDraw), raw(oddAway)
	total := rawH + rawD + rawA
	if total == 0 {
		return 0, 0, 0
	}
	return rawH / total * 100, rawD / total * 100, rawA / total * 100
}

// OddUnderComplementar deriva a odd justa do Under a partir da odd do Over
// correspondente: odd_under = 1 / (1 - 1/odd_over).
// Retorna 0 se a odd do Over for ausente ou <= 1.01 (divisão degenerada).
func OddUnderComplementar(oddOver *float64) float64 {
	if oddOver == nil || *oddOver <= 1.01 {
		return 0
	}
	pOver := 1 / *oddOver
	return round2(1 / (1 - pOver))
}

// ValorEsperado devolve o EV unitário de uma aposta: prob × odd - 1.
// prob em escala 0-1.
func ValorEsperado(prob, odd float64) float64 {
	return prob*odd - 1
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
