package ports

import (
	"context"

	"github.com/wxamb/sportsbank/internal/domain"
)

// Storage persiste o resultado de cada rodada analisada para auditoria.
type Storage interface {
	// SaveRodada persiste a rodada completa: resumo, prognósticos por jogo
	// e combinadas. Idempotente por (liga, data): reprocessar substitui.
	SaveRodada(ctx context.Context, rodada *domain.Rodada) error

	// Close fecha a conexão com o banco limpamente.
	Close() error
}
