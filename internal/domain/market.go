package domain

import (
	"math"
	"strings"
)

// Status classifica a confiança de uma recomendação.
type Status string

const (
	// StatusSafe: probabilidade e odd acima dos pisos do mercado.
	StatusSafe Status = "SAFE"
	// StatusSafeStar: probabilidade ok, mas a odd real está abaixo do
	// piso de valor. Sai com alerta, nunca silenciosamente.
	StatusSafeStar Status = "SAFE*"
	// StatusNeutro: aposta informativa, fora do critério SAFE.
	StatusNeutro Status = "NEUTRO"
)

// MarketKind é o enum fechado de mercados que o seletor conhece.
// Qualquer valor fora da lista é inválido por construção.
type MarketKind int

const (
	MarketUnknown MarketKind = iota
	MarketOver05
	MarketOver15
	MarketOver25
	MarketOver35
	MarketOver45
	MarketUnder05
	MarketUnder15
	MarketUnder25
	MarketUnder35
	MarketUnder45
	MarketBTTSYes
	MarketBTTSNo
	MarketHome
	MarketDraw
	MarketAway
	MarketDC1X
	MarketDC12
	MarketDCX2
)

// canonicalNames é o vocabulário canônico usado pelo validador de regime e
// pelo combinador de parlays. Labels de exibição ficam em Label.
var canonicalNames = map[MarketKind]string{
	MarketOver05:  "Over 0.5",
	MarketOver15:  "Over 1.5",
	MarketOver25:  "Over 2.5",
	MarketOver35:  "Over 3.5",
	MarketOver45:  "Over 4.5",
	MarketUnder05: "Under 0.5",
	MarketUnder15: "Under 1.5",
	MarketUnder25: "Under 2.5",
	MarketUnder35: "Under 3.5",
	MarketUnder45: "Under 4.5",
	MarketBTTSYes: "BTTS",
	MarketBTTSNo:  "BTTS No",
	MarketHome:    "1X2 Home",
	MarketDraw:    "1X2 Draw",
	MarketAway:    "1X2 Away",
	MarketDC1X:    "Double Chance 1X",
	MarketDC12:    "Double Chance 12",
	MarketDCX2:    "Double Chance X2",
}

// Canonical devolve o nome canônico do mercado, ou "" para desconhecido.
func (k MarketKind) Canonical() string {
	return canonicalNames[k]
}

// MercadosConhecidos devolve todos os mercados do vocabulário, em ordem
// estável de declaração.
func MercadosConhecidos() []MarketKind {
	return []MarketKind{
		MarketOver05, MarketOver15, MarketOver25, MarketOver35, MarketOver45,
		MarketUnder05, MarketUnder15, MarketUnder25, MarketUnder35, MarketUnder45,
		MarketBTTSYes, MarketBTTSNo,
		MarketHome, MarketDraw, MarketAway,
		MarketDC1X, MarketDC12, MarketDCX2,
	}
}

// apelidosMercado cobre as variantes de escrita que chegam de relatórios e
// planilhas antigas e precisam casar com o vocabulário canônico.
var apelidosMercado = map[string]MarketKind{
	"btts (ambas marcam)": MarketBTTSYes,
	"ambas marcam":        MarketBTTSYes,
	"btts sim":            MarketBTTSYes,
	"btts não":            MarketBTTSNo,
	"btts nao":            MarketBTTSNo,
	"dupla chance 1x":     MarketDC1X,
	"dupla chance 12":     MarketDC12,
	"dupla chance x2":     MarketDCX2,
	"dc 1x":               MarketDC1X,
	"dc 12":               MarketDC12,
	"dc x2":               MarketDCX2,
	"casa":                MarketHome,
	"empate":              MarketDraw,
	"fora":                MarketAway,
}

// ParseMercado resolve um nome de mercado (canônico, label de exibição ou
// variante legada) para o MarketKind correspondente. Nome irreconhecível
// devolve MarketUnknown.
func ParseMercado(nome string) MarketKind {
	n := strings.TrimSpace(nome)
	// Labels de totais carregam o sufixo "gols".
	n = strings.TrimSuffix(n, " gols")
	n = strings.TrimSuffix(n, " Gols")

	for k, canonico := range canonicalNames {
		if strings.EqualFold(n, canonico) {
			return k
		}
	}
	if k, ok := apelidosMercado[strings.ToLower(n)]; ok {
		return k
	}
	return MarketUnknown
}

// Label devolve o nome de exibição usado nos relatórios. Difere do canônico
// onde o quadro-resumo tradicionalmente escreve diferente (sufixo "gols" nos
// totais, "Ambas Marcam" no BTTS).
func (k MarketKind) Label() string {
	switch k {
	case MarketOver05, MarketOver15, MarketOver25, MarketOver35, MarketOver45,
		MarketUnder05, MarketUnder15, MarketUnder25, MarketUnder35, MarketUnder45:
		return canonicalNames[k] + " gols"
	case MarketBTTSYes:
		return "BTTS (Ambas Marcam)"
	case MarketBTTSNo:
		return "BTTS Não"
	case MarketDC1X:
		return "Dupla Chance 1X"
	case MarketDC12:
		return "Dupla Chance 12"
	case MarketDCX2:
		return "Dupla Chance X2"
	default:
		return canonicalNames[k]
	}
}

// Recommendation é um mercado recomendado para um jogo.
type Recommendation struct {
	Kind    MarketKind
	Mercado string // label de exibição
	Status  Status

	// Faixa honesta de probabilidade exibida ao apostador:
	// [floor(prob×100)-2, floor(prob×100)], nunca negativa.
	ProbMin int
	ProbMax int

	// OddMinima é o piso de valor esperado: round(1/prob, 2).
	OddMinima float64
	// OddReal é a cotação da casa quando disponível.
	OddReal *float64

	Alerta string
}

// OddExibida devolve a odd mostrada nos relatórios e usada no produto de
// parlays: a real quando existe, senão o piso de EV.
func (r Recommendation) OddExibida() float64 {
	if r.OddReal != nil && *r.OddReal > 0 {
		return *r.OddReal
	}
	return r.OddMinima
}

// FaixaProb monta a faixa de probabilidade a partir de prob em escala 0-1.
func FaixaProb(prob float64) (min, max int) {
	max = int(math.Floor(prob * 100))
	if max < 0 {
		max = 0
	}
	min = max - 2
	if min < 0 {
		min = 0
	}
	return min, max
}

// OddMinimaPara devolve o piso de EV de uma probabilidade 0-1: round(1/p, 2).
// Retorna 0 para prob <= 0.
func OddMinimaPara(prob float64) float64 {
	if prob <= 0 {
		return 0
	}
	return round2(1 / prob)
}
