package engine

import (
	"sort"

	"github.com/wxamb/sportsbank/internal/domain"
)

const (
	maxDuplas  = 4
	maxTriplas = 3
)

// pernaPool é um jogo elegível para combinadas, já com o mercado principal
// normalizado para o vocabulário canônico.
type pernaPool struct {
	perna           domain.PernaParlay
	mercadoCanonico string
}

// selecionarPoolParlay monta o pool de pernas em camadas: primeiro só jogos
// SAFE/SAFE*, senão NEUTRO, senão qualquer jogo com mercado principal.
// Sempre devolve o diagnóstico de montagem, mesmo com pool vazio.
func selecionarPoolParlay(jogos []domain.Prognostico) ([]pernaPool, domain.ParlayMeta) {
	meta := domain.ParlayMeta{Tier: domain.ParlayTierVazio}

	var safe, neutro, qualquer []pernaPool
	for _, j := range jogos {
		d := j.Derived
		if d.MercadoPrincipal == "" {
			meta.SemMercado++
			continue
		}
		if d.OddMinima <= 0 {
			meta.SemOdd++
		}

		p := pernaPool{
			perna: domain.PernaParlay{
				Jogo:    j.Rotulo(),
				Mercado: d.MercadoPrincipal,
				Status:  d.Status,
				Odd:     d.OddMinima,
			},
			mercadoCanonico: normalizarMercadoParlay(d.MercadoPrincipal),
		}

		qualquer = append(qualquer, p)
		switch d.Status {
		case domain.StatusSafe, domain.StatusSafeStar:
			safe = append(safe, p)
		case domain.StatusNeutro, "NEUTRAL":
			neutro = append(neutro, p)
		}
	}

	switch {
	case len(safe) > 0:
		meta.Tier = domain.ParlayTierSafe
		meta.PoolSize = len(safe)
		return safe, meta
	case len(neutro) > 0:
		meta.Tier = domain.ParlayTierNeutro
		meta.PoolSize = len(neutro)
		return neutro, meta
	case len(qualquer) > 0:
		meta.Tier = domain.ParlayTierComMercado
		meta.PoolSize = len(qualquer)
		return qualquer, meta
	default:
		return nil, meta
	}
}

// normalizarMercadoParlay reduz um label de mercado ao nome canônico para
// comparação textual entre pernas. Nome irreconhecível compara por si mesmo.
func normalizarMercadoParlay(nome string) string {
	if k := domain.ParseMercado(nome); k != domain.MarketUnknown {
		return k.Canonical()
	}
	return nome
}

// IdentificarDuplas enumera todos os pares de jogos do pool com o mesmo
// mercado principal e devolve as 4 duplas mais baratas (odd combinada
// ascendente). Com menos de 2 jogos elegíveis devolve lista vazia e o
// diagnóstico, nunca erro.
func IdentificarDuplas(jogos []domain.Prognostico) ([]domain.Dupla, domain.ParlayMeta) {
	pool, meta := selecionarPoolParlay(jogos)
	if len(pool) < 2 {
		return nil, meta
	}

	var duplas []domain.Dupla
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			if pool[i].mercadoCanonico != pool[j].mercadoCanonico {
				continue
			}
			pernas := [2]domain.PernaParlay{pool[i].perna, pool[j].perna}
			duplas = append(duplas, domain.Dupla{
				Pernas:       pernas,
				OddCombinada: domain.OddCombinada(pernas[:]),
			})
		}
	}

	sort.SliceStable(duplas, func(a, b int) bool {
		return duplas[a].OddCombinada < duplas[b].OddCombinada
	})
	if len(duplas) > maxDuplas {
		duplas = duplas[:maxDuplas]
	}
	return duplas, meta
}

// IdentificarTriplas enumera todos os trios de mesmo mercado principal e
// devolve as 3 triplas mais baratas.
func IdentificarTriplas(jogos []domain.Prognostico) ([]domain.Tripla, domain.ParlayMeta) {
	pool, meta := selecionarPoolParlay(jogos)
	if len(pool) < 3 {
		return nil, meta
	}

	var triplas []domain.Tripla
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			if pool[i].mercadoCanonico != pool[j].mercadoCanonico {
				continue
			}
			for k := j + 1; k < len(pool); k++ {
				if pool[j].mercadoCanonico != pool[k].mercadoCanonico {
					continue
				}
				pernas := [3]domain.PernaParlay{pool[i].perna, pool[j].perna, pool[k].perna}
				triplas = append(triplas, domain.Tripla{
					Pernas:       pernas,
					OddCombinada: domain.OddCombinada(pernas[:]),
				})
			}
		}
	}

	sort.SliceStable(triplas, func(a, b int) bool {
		return triplas[a].OddCombinada < triplas[b].OddCombinada
	})
	if len(triplas) > maxTriplas {
		triplas = triplas[:maxTriplas]
	}
	return triplas, meta
}
