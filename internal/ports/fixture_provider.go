package ports

import (
	"context"

	"github.com/wxamb/sportsbank/internal/domain"
)

// FixtureProvider monta os MatchInput de uma rodada a partir da fonte de
// dados externa (arquivo, API, S3). Resolução de colunas, cache e filtro de
// data são responsabilidade do provedor, nunca do pipeline.
type FixtureProvider interface {
	// Fixtures devolve os jogos da liga na data dada (formato YYYY-MM-DD).
	// Liga vazia devolve todos os jogos disponíveis.
	Fixtures(ctx context.Context, liga, data string) ([]domain.MatchInput, error)
}
