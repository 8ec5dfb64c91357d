package ports

import (
	"context"

	"github.com/wxamb/sportsbank/internal/domain"
)

// Notifier apresenta a rodada analisada ao usuário.
type Notifier interface {
	// Notify renderiza o quadro-resumo da rodada. Na implementação de
	// console, imprime a tabela de jogos e as combinadas.
	Notify(ctx context.Context, rodada *domain.Rodada) error
}
