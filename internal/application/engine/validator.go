package engine

import (
	"fmt"

	"github.com/wxamb/sportsbank/internal/domain"
)

// mercadosProibidos lista, por regime, os mercados que contradizem o perfil
// de gols da liga e nunca devem ser recomendados.
var mercadosProibidos = map[string][]domain.MarketKind{
	RegimeNormal: {
		domain.MarketOver35,
		domain.MarketOver45,
	},
	RegimeDefensiva: {
		domain.MarketOver25,
		domain.MarketOver35,
		domain.MarketOver45,
		domain.MarketBTTSYes,
	},
	RegimeHiperOfensiva: {},
}

// ValidacaoMercado é o veredito do validador para um mercado.
type ValidacaoMercado struct {
	Valido       bool
	Motivo       string
	RegimeUsado  string
	RegimeCaiuEm bool // regime desconhecido normalizado para NORMAL
}

// ValidarMercadoNome valida um mercado a partir do nome textual, resolvendo
// variantes de escrita antes de aplicar as regras de regime.
func ValidarMercadoNome(nome, regime string) ValidacaoMercado {
	kind := domain.ParseMercado(nome)
	if kind == domain.MarketUnknown {
		return ValidacaoMercado{
			Motivo:      fmt.Sprintf("Mercado inválido: %s", nome),
			RegimeUsado: regime,
		}
	}
	return ValidarMercado(kind, regime)
}

// ValidarMercado decide se um mercado pode ser recomendado sob um regime.
//
// Mercado desconhecido é sempre inválido. Regime desconhecido é normalizado
// para NORMAL (o chamador loga o warning via RegimeCaiuEm).
func ValidarMercado(mercado domain.MarketKind, regime string) ValidacaoMercado {
	if mercado.Canonical() == "" {
		return ValidacaoMercado{
			Motivo:      fmt.Sprintf("Mercado inválido: %s", mercado.Label()),
			RegimeUsado: regime,
		}
	}

	usado := regime
	caiu := false
	if _, ok := mercadosProibidos[usado]; !ok {
		usado = RegimeNormal
		caiu = true
	}

	for _, proibido := range mercadosProibidos[usado] {
		if mercado == proibido {
			return ValidacaoMercado{
				Motivo:       fmt.Sprintf("Mercado proibido para regime %s", usado),
				RegimeUsado:  usado,
				RegimeCaiuEm: caiu,
			}
		}
	}
	return ValidacaoMercado{Valido: true, Motivo: "OK", RegimeUsado: usado, RegimeCaiuEm: caiu}
}

// ValidarNomes valida uma lista de nomes textuais, devolvendo um veredito por
// nome na mesma ordem de entrada.
func ValidarNomes(nomes []string, regime string) []ValidacaoMercado {
	out := make([]ValidacaoMercado, len(nomes))
	for i, nome := range nomes {
		out[i] = ValidarMercadoNome(nome, regime)
	}
	return out
}

// MercadosProibidosPara devolve os mercados vetados sob o regime. Regime
// desconhecido usa as regras de NORMAL.
func MercadosProibidosPara(regime string) []domain.MarketKind {
	proibidos, ok := mercadosProibidos[regime]
	if !ok {
		proibidos = mercadosProibidos[RegimeNormal]
	}
	out := make([]domain.MarketKind, len(proibidos))
	copy(out, proibidos)
	return out
}

// MercadosPermitidosPara devolve o vocabulário completo menos os mercados
// vetados sob o regime, na ordem canônica.
func MercadosPermitidosPara(regime string) []domain.MarketKind {
	vetados := make(map[domain.MarketKind]bool)
	for _, m := range MercadosProibidosPara(regime) {
		vetados[m] = true
	}
	var out []domain.MarketKind
	for _, m := range domain.MercadosConhecidos() {
		if !vetados[m] {
			out = append(out, m)
		}
	}
	return out
}

// FiltrarMercadosPermitidos devolve só as recomendações válidas sob o regime,
// junto com os nomes canônicos das removidas (para log).
func FiltrarMercadosPermitidos(recs []domain.Recommendation, regime string) (permitidos []domain.Recommendation, removidos []string) {
	for _, r := range recs {
		v := ValidarMercado(r.Kind, regime)
		if v.Valido {
			permitidos = append(permitidos, r)
			continue
		}
		removidos = append(removidos, r.Kind.Canonical())
	}
	return permitidos, removidos
}
