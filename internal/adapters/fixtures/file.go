// Package fixtures implementa o FixtureProvider de arquivo JSON: o formato
// que a camada de coleta exporta depois de consolidar CSV/API.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wxamb/sportsbank/internal/domain"
)

// File carrega jogos de um arquivo JSON no formato de exportação da coleta.
type File struct {
	path string
	log  *slog.Logger
}

// NewFile cria o provedor apontando para o arquivo dado.
func NewFile(path string, log *slog.Logger) *File {
	if log == nil {
		log = slog.Default()
	}
	return &File{path: path, log: log}
}

// Fixtures lê o arquivo inteiro e devolve os jogos filtrados por liga e
// data. Filtro vazio aceita tudo.
func (f *File) Fixtures(ctx context.Context, liga, data string) ([]domain.MatchInput, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("fixtures.Fixtures: ler %q: %w", f.path, err)
	}

	var dtos []fixtureDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("fixtures.Fixtures: decodificar %q: %w", f.path, err)
	}

	jogos := make([]domain.MatchInput, 0, len(dtos))
	for _, dto := range dtos {
		if liga != "" && dto.Liga != liga {
			continue
		}
		if data != "" && dto.Data != "" && dto.Data != data {
			continue
		}
		jogo, err := dto.toDomain()
		if err != nil {
			f.log.Warn("jogo descartado do arquivo de fixtures",
				"arquivo", f.path, "id", dto.ID, "err", err)
			continue
		}
		jogos = append(jogos, jogo)
	}

	f.log.Info("fixtures carregadas",
		"arquivo", f.path, "total", len(dtos), "selecionadas", len(jogos))
	return jogos, nil
}

// fixtureDTO espelha o formato do arquivo de exportação da coleta.
type fixtureDTO struct {
	ID      string `json:"id"`
	Liga    string `json:"liga"`
	Data    string `json:"data"`
	Kickoff string `json:"kickoff,omitempty"`

	MediaGolsLiga float64 `json:"media_gols_liga"`
	NomeLiga      string  `json:"nome_liga,omitempty"`

	Casa teamDTO `json:"casa"`
	Fora teamDTO `json:"fora"`

	Odds domain.Odds      `json:"odds"`
	Feed domain.FeedProbs `json:"feed"`
}

type teamDTO struct {
	Nome string `json:"nome"`

	MediaGolsMarcados     float64  `json:"media_gols_marcados"`
	MediaGolsMarcadosCasa *float64 `json:"media_gols_marcados_casa,omitempty"`
	MediaGolsMarcadosFora *float64 `json:"media_gols_marcados_fora,omitempty"`
	MediaGolsMarcadosUlt5 *float64 `json:"media_gols_marcados_ult5,omitempty"`
	MediaGolsSofridos     *float64 `json:"media_gols_sofridos,omitempty"`
	MediaGolsSofridosCasa *float64 `json:"media_gols_sofridos_casa,omitempty"`
	MediaGolsSofridosFora *float64 `json:"media_gols_sofridos_fora,omitempty"`

	GolsMarcados float64 `json:"gols_marcados"`
	XG           float64 `json:"xg"`
	Jogos        int     `json:"jogos"`

	XGPorJogo   []float64 `json:"xg_por_jogo,omitempty"`
	GolsPorJogo []float64 `json:"gols_por_jogo,omitempty"`
}

func (dto fixtureDTO) toDomain() (domain.MatchInput, error) {
	if dto.Casa.Nome == "" || dto.Fora.Nome == "" {
		return domain.MatchInput{}, fmt.Errorf("jogo %q sem nome de time", dto.ID)
	}

	var kickoff time.Time
	if dto.Kickoff != "" {
		t, err := time.Parse(time.RFC3339, dto.Kickoff)
		if err != nil {
			return domain.MatchInput{}, fmt.Errorf("jogo %q: kickoff: %w", dto.ID, err)
		}
		kickoff = t
	}

	nomeLiga := dto.NomeLiga
	if nomeLiga == "" {
		nomeLiga = domain.NomeLigaExibicao(dto.Liga)
	}

	return domain.MatchInput{
		ID:       dto.ID,
		HomeTeam: dto.Casa.Nome,
		AwayTeam: dto.Fora.Nome,
		Kickoff:  kickoff,
		League: domain.LeagueContext{
			ID:              dto.Liga,
			Name:            nomeLiga,
			AvgGoalsPerGame: dto.MediaGolsLiga,
		},
		Home: dto.Casa.toDomain(),
		Away: dto.Fora.toDomain(),
		Odds: dto.Odds,
		Feed: dto.Feed,
	}, nil
}

func (t teamDTO) toDomain() domain.TeamSeasonStats {
	return domain.TeamSeasonStats{
		Name:                    t.Nome,
		GoalsScoredAvgOverall:   t.MediaGolsMarcados,
		GoalsScoredAvgHome:      t.MediaGolsMarcadosCasa,
		GoalsScoredAvgAway:      t.MediaGolsMarcadosFora,
		GoalsScoredAvgLast5:     t.MediaGolsMarcadosUlt5,
		GoalsConcededAvgOverall: t.MediaGolsSofridos,
		GoalsConcededAvgHome:    t.MediaGolsSofridosCasa,
		GoalsConcededAvgAway:    t.MediaGolsSofridosFora,
		GoalsScored:             t.GolsMarcados,
		XG:                      t.XG,
		GamesPlayed:             t.Jogos,
		XGPerGame:               t.XGPorJogo,
		GoalsPerGame:            t.GolsPorJogo,
	}
}
