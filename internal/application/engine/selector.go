package engine

import (
	"sort"

	"github.com/wxamb/sportsbank/internal/domain"
)

// Pisos de odd real para os mercados Under. Abaixo do piso alto a
// recomendação sai SAFE* com alerta; abaixo do piso baixo, alerta forte.
const (
	oddPisoAltoU35  = 1.25
	oddPisoBaixoU35 = 1.20
	oddPisoAltoU45  = 1.15
	oddPisoBaixoU45 = 1.10
)

const (
	limiarOver25Hiper = 0.72
	limiarBTTSSafe    = 0.68
	limiarBTTSNeutro  = 0.60
	limiarDC1XNeutro  = 0.65

	limiarFallbackBTTS = 0.50
	limiarFallbackDC   = 0.60
	fallbackTopN       = 3
)

const (
	alertaOddBaixa      = "Odd baixa"
	alertaOddMuitoBaixa = "Odd muito baixa"
)

// NormalizarProb aceita probabilidade em escala 0-1 ou 0-100 e devolve
// sempre 0-1. nil ou valor negativo continua nil (entrada inválida é
// ausência de dado, não zero).
func NormalizarProb(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	p := *v
	if p > 1 {
		p /= 100
	}
	if p > 1 {
		p = 1
	}
	return &p
}

// LimiaresUnder devolve os limiares dinâmicos de probabilidade para
// Under 3.5 e Under 4.5 conforme o perfil de gols da liga.
func LimiaresUnder(mediaGolsLiga float64) (under35, under45 float64) {
	switch {
	case mediaGolsLiga < 2.5:
		return 0.55, 0.65
	case mediaGolsLiga < 3.0:
		return 0.60, 0.70
	default:
		return 0.65, 0.75
	}
}

// SelecaoMercados é a saída do seletor para um jogo: as recomendações que
// sobreviveram ao validador, os mercados removidos por regime (para log) e
// os campos derivados enriquecidos com o prognóstico principal.
type SelecaoMercados struct {
	Mercados  []domain.Recommendation
	Removidos []string
	Derived   domain.MatchDerived
}

// SelecionarMercadosJogo converte as probabilidades de um jogo em
// recomendações de mercado com status, faixa de probabilidade e odd mínima,
// filtradas pelo validador de regime. Função pura: devolve uma cópia
// enriquecida de derived em vez de mutar a entrada.
func SelecionarMercadosJogo(jogo domain.MatchInput, derived domain.MatchDerived, regime string) SelecaoMercados {
	recs := montarCandidatos(jogo, derived, regime)

	permitidos, removidos := FiltrarMercadosPermitidos(recs, regime)

	out := SelecaoMercados{Mercados: permitidos, Removidos: removidos, Derived: derived}
	if len(permitidos) > 0 {
		principal := permitidos[0]
		out.Derived.MercadoPrincipal = principal.Mercado
		out.Derived.Status = principal.Status
		out.Derived.OddMinima = principal.OddExibida()
	}
	return out
}

func montarCandidatos(jogo domain.MatchInput, d domain.MatchDerived, regime string) []domain.Recommendation {
	var recs []domain.Recommendation

	probU35 := probOuNil(d.Under35Prob)
	probU45 := probOuNil(d.Under45Prob)
	probO25 := probOuNil(d.Over25Prob)
	probBTTS := probOuNil(d.BTTSProb)
	probDC := probDuplaChance1X(d)

	limiarU35, limiarU45 := LimiaresUnder(jogo.League.AvgGoalsPerGame)

	if regime == RegimeHiperOfensiva {
		if probO25 != nil && *probO25 >= limiarOver25Hiper {
			recs = append(recs, novaRec(domain.MarketOver25, *probO25, domain.StatusSafe, jogo.Odds.Over25, ""))
		}
	} else {
		// Under 3.5 tem prioridade; Under 4.5 só entra se o 3.5 não bater.
		if probU35 != nil && *probU35 >= limiarU35 {
			recs = append(recs, recUnder(domain.MarketUnder35, *probU35, jogo.Odds.Over35, oddPisoAltoU35, oddPisoBaixoU35))
		} else if probU45 != nil && *probU45 >= limiarU45 {
			recs = append(recs, recUnder(domain.MarketUnder45, *probU45, jogo.Odds.Over45, oddPisoAltoU45, oddPisoBaixoU45))
		}
	}

	if probBTTS != nil {
		switch {
		case *probBTTS >= limiarBTTSSafe:
			recs = append(recs, novaRec(domain.MarketBTTSYes, *probBTTS, domain.StatusSafe, jogo.Odds.BTTSYes, ""))
		case *probBTTS >= limiarBTTSNeutro:
			recs = append(recs, novaRec(domain.MarketBTTSYes, *probBTTS, domain.StatusNeutro, jogo.Odds.BTTSYes, ""))
		}
	}

	if probDC != nil && *probDC >= limiarDC1XNeutro {
		recs = append(recs, novaRec(domain.MarketDC1X, *probDC, domain.StatusNeutro, nil, ""))
	}

	if len(recs) == 0 {
		recs = candidatosFallback(jogo, probU35, probU45, probO25, probBTTS, probDC)
	}
	return recs
}

// candidatosFallback monta o plano B de um jogo sem mercado qualificado:
// as probabilidades definidas, ranqueadas, com teto de 3 entradas NEUTRO.
func candidatosFallback(jogo domain.MatchInput, probU35, probU45, probO25, probBTTS, probDC *float64) []domain.Recommendation {
	type candidato struct {
		kind domain.MarketKind
		prob float64
		odd  *float64
	}
	var pool []candidato

	if probU35 != nil {
		pool = append(pool, candidato{domain.MarketUnder35, *probU35, nil})
	}
	if probU45 != nil {
		pool = append(pool, candidato{domain.MarketUnder45, *probU45, nil})
	}
	if probO25 != nil {
		pool = append(pool, candidato{domain.MarketOver25, *probO25, jogo.Odds.Over25})
	}
	if probBTTS != nil && *probBTTS >= limiarFallbackBTTS {
		pool = append(pool, candidato{domain.MarketBTTSYes, *probBTTS, jogo.Odds.BTTSYes})
	}
	if probDC != nil && *probDC >= limiarFallbackDC {
		pool = append(pool, candidato{domain.MarketDC1X, *probDC, nil})
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].prob > pool[j].prob })
	if len(pool) > fallbackTopN {
		pool = pool[:fallbackTopN]
	}

	recs := make([]domain.Recommendation, 0, len(pool))
	for _, c := range pool {
		recs = append(recs, novaRec(c.kind, c.prob, domain.StatusNeutro, c.odd, ""))
	}
	return recs
}

// recUnder monta a recomendação de um mercado Under: a odd sai da odd do
// Over correspondente via complemento, e o status depende do piso de valor.
func recUnder(kind domain.MarketKind, prob float64, oddOver *float64, pisoAlto, pisoBaixo float64) domain.Recommendation {
	var oddReal *float64
	if odd := domain.OddUnderComplementar(oddOver); odd > 0 {
		oddReal = &odd
	}

	status := domain.StatusSafeStar
	alerta := alertaOddMuitoBaixa
	if oddReal != nil {
		switch {
		case *oddReal >= pisoAlto:
			status = domain.StatusSafe
			alerta = ""
		case *oddReal >= pisoBaixo:
			alerta = alertaOddBaixa
		}
	}
	r := novaRec(kind, prob, status, nil, alerta)
	r.OddReal = oddReal
	return r
}

func novaRec(kind domain.MarketKind, prob float64, status domain.Status, oddReal *float64, alerta string) domain.Recommendation {
	min, max := domain.FaixaProb(prob)
	r := domain.Recommendation{
		Kind:      kind,
		Mercado:   kind.Label(),
		Status:    status,
		ProbMin:   min,
		ProbMax:   max,
		OddMinima: domain.OddMinimaPara(prob),
		Alerta:    alerta,
	}
	if oddReal != nil && *oddReal > 0 {
		r.OddReal = oddReal
	}
	return r
}

// probOuNil trata probabilidade derivada zerada como ausência de dado:
// nenhum mercado real tem probabilidade exatamente 0.
func probOuNil(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return NormalizarProb(&v)
}

// probDuplaChance1X soma P(casa) + P(empate) em escala 0-1; nil quando o
// 1X2 implícito não pôde ser calculado.
func probDuplaChance1X(d domain.MatchDerived) *float64 {
	if d.HomeWinProb <= 0 && d.DrawProb <= 0 {
		return nil
	}
	p := clamp((d.HomeWinProb+d.DrawProb)/100, 0, 1)
	return &p
}
