package domain

// PernaParlay é uma perna de combinada: o prognóstico principal de um jogo.
type PernaParlay struct {
	Jogo    string // "Casa x Fora"
	Mercado string // label de exibição do mercado principal
	Status  Status
	Odd     float64 // odd exibida da perna (real ou piso de EV)
}

// Dupla é uma combinada de duas pernas de jogos distintos.
type Dupla struct {
	Pernas       [2]PernaParlay
	OddCombinada float64
}

// Tripla é uma combinada de três pernas de jogos distintos.
type Tripla struct {
	Pernas       [3]PernaParlay
	OddCombinada float64
}

// ParlayMeta descreve como o pool de pernas foi montado, para diagnóstico
// de rodadas que saem sem combinadas.
type ParlayMeta struct {
	// Tier do pool usado: SAFE, NEUTRO, COM_MERCADO ou VAZIO.
	Tier string
	// Tamanho final do pool de pernas.
	PoolSize int
	// Jogos descartados por não terem mercado principal.
	SemMercado int
	// Pernas que entraram sem odd real (usando o piso de EV).
	SemOdd int
}

const (
	ParlayTierSafe       = "SAFE"
	ParlayTierNeutro     = "NEUTRO"
	ParlayTierComMercado = "COM_MERCADO"
	ParlayTierVazio      = "VAZIO"
)

// OddCombinada devolve o produto das odds de um conjunto de pernas.
// Perna sem odd entra como 1.0 (não infla nem zera o produto).
func OddCombinada(pernas []PernaParlay) float64 {
	produto := 1.0
	for _, p := range pernas {
		odd := p.Odd
		if odd <= 0 {
			odd = 1.0
		}
		produto *= odd
	}
	return round2(produto)
}
