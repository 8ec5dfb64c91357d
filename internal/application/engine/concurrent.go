// concurrent.go — worker pool para derivação paralela de jogos.
//
// A derivação é independente por jogo (lambdas, sorte, caos, Poisson), então
// o lote inteiro roda em paralelo; só seleção de mercados, combinadas e
// classificação de rodada dependem do lote completo.
package engine

import (
	"context"
	"runtime"
	"sync"

	"github.com/wxamb/sportsbank/internal/domain"
)

// derivarJogosConcurrent deriva todos os jogos do lote em paralelo,
// preservando a ordem de entrada no slice de saída.
//
// Se workers <= 0 usa runtime.NumCPU() × 2.
func (e *Engine) derivarJogosConcurrent(ctx context.Context, jogos []domain.MatchInput) []domain.Prognostico {
	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	if workers > len(jogos) {
		workers = len(jogos)
	}

	type tarefa struct {
		idx  int
		jogo domain.MatchInput
	}

	workCh := make(chan tarefa, len(jogos))
	out := make([]domain.Prognostico, len(jogos))

	// Cada worker escreve só no índice da sua tarefa; sem lock.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range workCh {
				if ctx.Err() != nil {
					return
				}
				out[t.idx] = e.derivarJogo(t.jogo)
			}
		}()
	}

	for i, j := range jogos {
		workCh <- tarefa{idx: i, jogo: j}
	}
	close(workCh)
	wg.Wait()

	return out
}
