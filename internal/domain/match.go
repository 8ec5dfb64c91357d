package domain

import "time"

// TeamSeasonStats agrega as médias de temporada de um time, já consolidadas
// pela camada de dados. Campos de split (casa/fora, últimos 5) são ponteiros:
// nil significa que o provedor não trouxe o recorte, e o cálculo cai no
// fallback da média geral.
type TeamSeasonStats struct {
	Name string

	// Ataque.
	GoalsScoredAvgOverall float64
	GoalsScoredAvgHome    *float64
	GoalsScoredAvgAway    *float64
	GoalsScoredAvgLast5   *float64

	// Defesa (gols sofridos).
	GoalsConcededAvgOverall *float64
	GoalsConcededAvgHome    *float64
	GoalsConcededAvgAway    *float64

	// Totais da temporada, usados pelo filtro de sorte xG.
	GoalsScored float64
	XG          float64
	GamesPlayed int

	// Séries recentes em ordem cronológica, usadas pelo detector de caos.
	XGPerGame    []float64
	GoalsPerGame []float64
}

// LeagueContext carrega o contexto da liga em que o jogo acontece.
type LeagueContext struct {
	ID              string
	Name            string
	AvgGoalsPerGame float64
}

// Odds reúne as odds decimais disponíveis para o jogo. nil = mercado sem
// cotação no provedor.
type Odds struct {
	Home *float64 `json:"home"`
	Draw *float64 `json:"draw"`
	Away *float64 `json:"away"`

	Over15 *float64 `json:"over_1_5"`
	Over25 *float64 `json:"over_2_5"`
	Over35 *float64 `json:"over_3_5"`
	Over45 *float64 `json:"over_4_5"`

	BTTSYes *float64 `json:"btts_yes"`
	BTTSNo  *float64 `json:"btts_no"`
}

// FeedProbs são percentuais (0-100) pré-calculados pelo provedor upstream.
// Quando presentes, têm precedência sobre o modelo Poisson próprio; a
// divergência alta entre feed e modelo gera warning, não erro.
type FeedProbs struct {
	HomeWinPct *float64 `json:"home_win_pct"`
	DrawPct    *float64 `json:"draw_pct"`
	Over25Pct  *float64 `json:"over_2_5_pct"`
	BTTSPct    *float64 `json:"btts_pct"`
}

// MatchInput é a entrada completa de um jogo para o pipeline de análise.
type MatchInput struct {
	ID       string
	HomeTeam string
	AwayTeam string
	Kickoff  time.Time
	League   LeagueContext

	Home TeamSeasonStats
	Away TeamSeasonStats

	Odds Odds
	Feed FeedProbs
}

// Rotulo devolve o identificador humano do confronto ("Casa x Fora").
func (m MatchInput) Rotulo() string {
	return m.HomeTeam + " x " + m.AwayTeam
}

// LuckSide é o diagnóstico do filtro de sorte xG para um dos lados do jogo.
type LuckSide struct {
	Detected       bool
	Discrepancy    float64
	Classification string // NORMAL | SORTE_LEVE | SORTE_ALTA | INSUFFICIENT_DATA | INVALID_XG
	LambdaOriginal float64
	LambdaAdjusted float64
}

// LuckMeta consolida o filtro de sorte dos dois lados.
type LuckMeta struct {
	Home LuckSide
	Away LuckSide
}

// Ajustado indica se algum dos lados teve λ reduzido.
func (l LuckMeta) Ajustado() bool {
	return l.Home.Detected || l.Away.Detected
}

// ChaosSide é o diagnóstico de volatilidade de performance de um time.
type ChaosSide struct {
	Detected       bool
	CV             float64
	Classification string // ESTAVEL | MODERADO | CAOS | INSUFFICIENT_DATA
	Method         string // xg | goals | none
}

// ChaosMeta consolida o detector de caos do jogo.
type ChaosMeta struct {
	Home ChaosSide
	Away ChaosSide
}

// Caotico indica jogo imprevisível: basta UM lado em caos.
func (c ChaosMeta) Caotico() bool {
	return c.Home.Detected || c.Away.Detected
}

// AmbosCaoticos indica os dois lados voláteis ao mesmo tempo.
func (c ChaosMeta) AmbosCaoticos() bool {
	return c.Home.Detected && c.Away.Detected
}

// MatchDerived carrega tudo que o pipeline calcula para um jogo:
// lambdas, probabilidades (escala 0-100) e o prognóstico principal.
type MatchDerived struct {
	LambdaHome  float64
	LambdaAway  float64
	LambdaTotal float64

	// 1X2 implícito das odds (ou do feed quando presente).
	HomeWinProb float64
	DrawProb    float64
	AwayWinProb float64

	Over05Prob float64
	Over15Prob float64
	Over25Prob float64
	Over35Prob float64
	Over45Prob float64

	Under35Prob float64
	Under45Prob float64

	BTTSProb float64

	Luck  LuckMeta
	Chaos ChaosMeta

	Regime string

	// Prognóstico principal escolhido pelo seletor. Vazio = jogo sem
	// mercado recomendável; ele sai do pool de duplas/triplas.
	MercadoPrincipal string
	Status           Status
	OddMinima        float64
}

// Prognostico é o resultado completo da análise de um jogo: entrada,
// derivados e a lista ordenada de mercados recomendados.
type Prognostico struct {
	MatchInput
	Derived  MatchDerived
	Mercados []Recommendation
}

// Rodada é a saída de uma execução completa do pipeline para uma liga.
type Rodada struct {
	Liga         string
	Data         string
	GeradoEm     time.Time
	Jogos        []Prognostico
	Regime       string
	Volatilidade string

	Duplas      []Dupla
	DuplasMeta  ParlayMeta
	Triplas     []Tripla
	TriplasMeta ParlayMeta
}
