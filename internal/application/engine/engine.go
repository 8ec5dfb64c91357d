package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/wxamb/sportsbank/internal/domain"
)

// Divergência (em pontos percentuais) entre feed e modelo Poisson a partir
// da qual o engine loga warning antes de preferir o feed.
const divergenciaFeedPts = 15.0

// Engine orquestra o pipeline de prognósticos de uma rodada.
type Engine struct {
	log     *slog.Logger
	workers int
}

// New cria o engine. workers <= 0 deixa o pool dimensionar pelo número de
// CPUs.
func New(log *slog.Logger, workers int) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log, workers: workers}
}

// AnalisarRodada roda o pipeline completo para um lote de jogos de uma
// liga/data: derivação por jogo (paralela), classificação de regime e
// volatilidade da rodada, seleção de mercados e combinadas.
//
// Combinadas e classificação de rodada só rodam depois que todos os jogos
// tiveram seu mercado principal selecionado.
func (e *Engine) AnalisarRodada(ctx context.Context, liga, data string, jogos []domain.MatchInput) (*domain.Rodada, error) {
	if len(jogos) == 0 {
		return nil, fmt.Errorf("engine.AnalisarRodada: rodada sem jogos para %s/%s", liga, data)
	}

	prognosticos := e.derivarJogosConcurrent(ctx, jogos)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("engine.AnalisarRodada: %w", err)
	}

	mediasLiga := make([]float64, 0, len(prognosticos))
	lambdasTotais := make([]float64, 0, len(prognosticos))
	for _, p := range prognosticos {
		if p.League.AvgGoalsPerGame > 0 {
			mediasLiga = append(mediasLiga, p.League.AvgGoalsPerGame)
		}
		lambdasTotais = append(lambdasTotais, p.Derived.LambdaTotal)
	}
	regime, volatilidade := CalcularRegimeEVolatilidade(mediasLiga, lambdasTotais)

	for i := range prognosticos {
		p := &prognosticos[i]
		sel := SelecionarMercadosJogo(p.MatchInput, p.Derived, p.Derived.Regime)
		if len(sel.Removidos) > 0 {
			e.log.Info("mercados removidos pelo validador de regime",
				"jogo", p.Rotulo(),
				"regime", p.Derived.Regime,
				"removidos", sel.Removidos,
			)
		}
		p.Derived = sel.Derived
		p.Mercados = sel.Mercados
	}

	duplas, duplasMeta := IdentificarDuplas(prognosticos)
	triplas, triplasMeta := IdentificarTriplas(prognosticos)

	e.log.Info("rodada analisada",
		"liga", liga,
		"data", data,
		"jogos", len(prognosticos),
		"regime", regime,
		"volatilidade", volatilidade,
		"duplas", len(duplas),
		"triplas", len(triplas),
	)

	return &domain.Rodada{
		Liga:         liga,
		Data:         data,
		GeradoEm:     time.Now(),
		Jogos:        prognosticos,
		Regime:       regime,
		Volatilidade: volatilidade,
		Duplas:       duplas,
		DuplasMeta:   duplasMeta,
		Triplas:      triplas,
		TriplasMeta:  triplasMeta,
	}, nil
}

// derivarJogo roda a etapa por-jogo do pipeline: regime da liga, lambdas,
// filtro de sorte xG, detector de caos e probabilidades Poisson.
func (e *Engine) derivarJogo(m domain.MatchInput) domain.Prognostico {
	mediaLiga := m.League.AvgGoalsPerGame
	if mediaLiga <= 0 {
		e.log.Warn("liga sem média de gols, usando default",
			"jogo", m.Rotulo(), "default", mediaLigaDefault)
		mediaLiga = mediaLigaDefault
	}
	regime := ClassificarRegimeLiga(mediaLiga)

	lambdaHome, lambdaAway := CalcularLambdaJogo(m.Home, m.Away, m.League, regime)
	lambdaHome, lambdaAway, sorte := AjustarLambdaJogoPorXG(lambdaHome, lambdaAway, m.Home, m.Away)
	if sorte.Ajustado() {
		e.log.Info("lambda ajustado por sorte insustentável",
			"jogo", m.Rotulo(),
			"casa", sorte.Home.Classification,
			"fora", sorte.Away.Classification,
		)
	}

	caos := DetectarCaosJogo(m.Home, m.Away)
	if caos.Caotico() {
		e.log.Warn("jogo com performance caótica",
			"jogo", m.Rotulo(),
			"casa_cv", caos.Home.CV,
			"fora_cv", caos.Away.CV,
		)
	}

	lambdaTotal := lambdaHome + lambdaAway

	d := domain.MatchDerived{
		LambdaHome:  round3(lambdaHome),
		LambdaAway:  round3(lambdaAway),
		LambdaTotal: round3(lambdaTotal),
		Luck:        sorte,
		Chaos:       caos,
		Regime:      regime,
	}

	d.Over05Prob = round1((1 - domain.PoissonCDF(0, lambdaTotal)) * 100)
	d.Over15Prob = round1((1 - domain.PoissonCDF(1, lambdaTotal)) * 100)
	d.Over25Prob = round1((1 - domain.PoissonCDF(2, lambdaTotal)) * 100)
	d.Over35Prob = round1((1 - domain.PoissonCDF(3, lambdaTotal)) * 100)
	d.Over45Prob = round1((1 - domain.PoissonCDF(4, lambdaTotal)) * 100)
	d.Under35Prob = round1(domain.PoissonCDF(3, lambdaTotal) * 100)
	d.Under45Prob = round1(domain.PoissonCDF(4, lambdaTotal) * 100)

	bttsPoisson := (1 - domain.PoissonPMF(0, lambdaHome)) * (1 - domain.PoissonPMF(0, lambdaAway))
	d.BTTSProb = round1(bttsPoisson * 100)

	h, dr, a := domain.ImpliedProbs(m.Odds.Home, m.Odds.Draw, m.Odds.Away)
	d.HomeWinProb, d.DrawProb, d.AwayWinProb = round1(h), round1(dr), round1(a)

	e.aplicarFeed(m, &d)

	return domain.Prognostico{MatchInput: m, Derived: d}
}

// aplicarFeed dá precedência aos percentuais pré-calculados do provedor
// sobre o modelo próprio, logando divergências altas.
func (e *Engine) aplicarFeed(m domain.MatchInput, d *domain.MatchDerived) {
	d.HomeWinProb = e.prefereFeed(m, "home_win", m.Feed.HomeWinPct, d.HomeWinProb)
	d.DrawProb = e.prefereFeed(m, "draw", m.Feed.DrawPct, d.DrawProb)
	d.Over25Prob = e.prefereFeed(m, "over_2_5", m.Feed.Over25Pct, d.Over25Prob)
	d.BTTSProb = e.prefereFeed(m, "btts", m.Feed.BTTSPct, d.BTTSProb)
}

func (e *Engine) prefereFeed(m domain.MatchInput, campo string, feed *float64, modelo float64) float64 {
	p := NormalizarProb(feed)
	if p == nil {
		return modelo
	}
	v := *p * 100
	if modelo > 0 && math.Abs(v-modelo) > divergenciaFeedPts {
		e.log.Warn("feed diverge do modelo Poisson",
			"jogo", m.Rotulo(),
			"campo", campo,
			"feed", round1(v),
			"modelo", modelo,
		)
	}
	return round1(v)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
