package domain

import "strings"

// nomesLiga mapeia identificadores internos de liga para o nome de exibição
// usado nos relatórios.
var nomesLiga = map[string]string{
	"brasileirao":    "Brasileirão Série A",
	"brasileirao-b":  "Brasileirão Série B",
	"premier-league": "Premier League",
	"la-liga":        "La Liga",
	"serie-a":        "Serie A (Itália)",
	"bundesliga":     "Bundesliga",
	"ligue-1":        "Ligue 1",
	"eredivisie":     "Eredivisie",
	"primeira-liga":  "Primeira Liga",
	"championship":   "Championship",
	"libertadores":   "Copa Libertadores",
	"sul-americana":  "Copa Sul-Americana",
	"champions":      "Champions League",
	"europa-league":  "Europa League",
}

// NomeLigaExibicao devolve o nome de exibição de uma liga. Para liga fora do
// mapa, capitaliza o identificador trocando hífens por espaços.
func NomeLigaExibicao(id string) string {
	if nome, ok := nomesLiga[strings.ToLower(id)]; ok {
		return nome
	}
	partes := strings.Split(strings.ReplaceAll(id, "-", " "), " ")
	for i, p := range partes {
		if p == "" {
			continue
		}
		partes[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(partes, " ")
}
