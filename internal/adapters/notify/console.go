// Package notify implementa os renderizadores de saída da rodada: o
// quadro-resumo de console e o texto pronto para grupos de WhatsApp.
package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/wxamb/sportsbank/internal/domain"
)

// Formatos de saída aceitos pelo Console.
const (
	FormatoQuadro   = "quadro"
	FormatoWhatsApp = "whatsapp"
)

const larguraSeparador = 67

// Console implementa ports.Notifier escrevendo no terminal.
type Console struct {
	out     io.Writer
	formato string
}

// NewConsole cria um notificador que escreve em stdout.
func NewConsole(formato string) *Console {
	return &Console{out: os.Stdout, formato: formato}
}

// NewConsoleWriter cria um notificador para tests.
func NewConsoleWriter(w io.Writer, formato string) *Console {
	return &Console{out: w, formato: formato}
}

// Notify renderiza a rodada no formato configurado.
func (c *Console) Notify(_ context.Context, rodada *domain.Rodada) error {
	if rodada == nil || len(rodada.Jogos) == 0 {
		fmt.Fprintln(c.out, "Nenhum jogo analisado para a rodada.")
		return nil
	}

	if c.formato == FormatoWhatsApp {
		c.printWhatsApp(rodada)
		return nil
	}
	c.printQuadro(rodada)
	return nil
}

func (c *Console) printQuadro(r *domain.Rodada) {
	sep := strings.Repeat("═", larguraSeparador)

	fmt.Fprintln(c.out, sep)
	fmt.Fprintf(c.out, "⚽ PROGNÓSTICOS — %s — %s\n", domain.NomeLigaExibicao(r.Liga), r.Data)
	fmt.Fprintf(c.out, "Regime: %s | Volatilidade: %s | Jogos: %d\n",
		r.Regime, r.Volatilidade, len(r.Jogos))
	fmt.Fprintln(c.out, sep)

	c.printTabelaJogos(r.Jogos)
	c.printAlertas(r.Jogos)
	c.printCombinadas(r)

	fmt.Fprintln(c.out, sep)
}

func (c *Console) printTabelaJogos(jogos []domain.Prognostico) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Jogo", "λC", "λF", "1%", "X%", "2%", "O2.5%", "BTTS%", "Mercado", "Status", "Odd")

	for _, p := range jogos {
		d := p.Derived
		table.Append(
			p.Rotulo(),
			fmt.Sprintf("%.2f", d.LambdaHome),
			fmt.Sprintf("%.2f", d.LambdaAway),
			pct(d.HomeWinProb),
			pct(d.DrawProb),
			pct(d.AwayWinProb),
			pct(d.Over25Prob),
			pct(d.BTTSProb),
			naoVazio(d.MercadoPrincipal, "—"),
			naoVazio(string(d.Status), "—"),
			odd(d.OddMinima),
		)
	}

	table.Render()
}

// printAlertas lista sorte insustentável, caos, alertas de odd e mercados
// com valor esperado positivo por jogo.
func (c *Console) printAlertas(jogos []domain.Prognostico) {
	var linhas []string
	for _, p := range jogos {
		d := p.Derived
		if d.Luck.Ajustado() {
			linhas = append(linhas, fmt.Sprintf("🍀 %s: sorte insustentável (casa: %s, fora: %s) — λ ajustado",
				p.Rotulo(), d.Luck.Home.Classification, d.Luck.Away.Classification))
		}
		if d.Chaos.Caotico() {
			linhas = append(linhas, fmt.Sprintf("🌪️ %s: performance caótica (CV casa %.2f / fora %.2f)",
				p.Rotulo(), d.Chaos.Home.CV, d.Chaos.Away.CV))
		}
		for _, m := range p.Mercados {
			if m.Alerta != "" {
				linhas = append(linhas, fmt.Sprintf("⚠️ %s: %s — %s", p.Rotulo(), m.Mercado, m.Alerta))
			}
			if m.OddReal != nil {
				ev := domain.ValorEsperado(float64(m.ProbMax)/100, *m.OddReal)
				if ev > 0 {
					linhas = append(linhas, fmt.Sprintf("💰 %s: %s com EV +%.0f%% à odd %.2f",
						p.Rotulo(), m.Mercado, ev*100, *m.OddReal))
				}
			}
		}
	}
	if len(linhas) == 0 {
		return
	}
	fmt.Fprintln(c.out)
	for _, l := range linhas {
		fmt.Fprintln(c.out, "  "+l)
	}
}

func (c *Console) printCombinadas(r *domain.Rodada) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "🎯 DUPLAS SUGERIDAS")
	if len(r.Duplas) == 0 {
		fmt.Fprintf(c.out, "  nenhuma dupla elegível (pool %s, %d jogos, %d sem mercado)\n",
			r.DuplasMeta.Tier, r.DuplasMeta.PoolSize, r.DuplasMeta.SemMercado)
	}
	for i, d := range r.Duplas {
		fmt.Fprintf(c.out, "  %d. %s + %s\n", i+1, legenda(d.Pernas[0]), legenda(d.Pernas[1]))
		fmt.Fprintf(c.out, "     odd combinada: %.2f\n", d.OddCombinada)
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "🎯 TRIPLAS SUGERIDAS")
	if len(r.Triplas) == 0 {
		fmt.Fprintf(c.out, "  nenhuma tripla elegível (pool %s, %d jogos)\n",
			r.TriplasMeta.Tier, r.TriplasMeta.PoolSize)
	}
	for i, t := range r.Triplas {
		fmt.Fprintf(c.out, "  %d. %s + %s + %s\n", i+1,
			legenda(t.Pernas[0]), legenda(t.Pernas[1]), legenda(t.Pernas[2]))
		fmt.Fprintf(c.out, "     odd combinada: %.2f\n", t.OddCombinada)
	}
}

// printWhatsApp gera o texto compacto com a marcação de negrito do WhatsApp.
func (c *Console) printWhatsApp(r *domain.Rodada) {
	fmt.Fprintf(c.out, "*⚽ PROGNÓSTICOS — %s*\n", domain.NomeLigaExibicao(r.Liga))
	fmt.Fprintf(c.out, "_%s · regime %s · volatilidade %s_\n\n", r.Data, r.Regime, r.Volatilidade)

	for _, p := range r.Jogos {
		d := p.Derived
		fmt.Fprintf(c.out, "*%s*\n", p.Rotulo())
		if d.MercadoPrincipal == "" {
			fmt.Fprintln(c.out, "  sem mercado recomendado")
			continue
		}
		linha := fmt.Sprintf("  %s [%s] · prob %d-%d%% · odd mín %.2f",
			d.MercadoPrincipal, d.Status, probMin(p), probMax(p), d.OddMinima)
		fmt.Fprintln(c.out, linha)
	}

	if len(r.Duplas) > 0 {
		fmt.Fprintln(c.out, "\n*🎯 Duplas*")
		for _, d := range r.Duplas {
			fmt.Fprintf(c.out, "  %s + %s → *%.2f*\n",
				d.Pernas[0].Jogo, d.Pernas[1].Jogo, d.OddCombinada)
		}
	}
	if len(r.Triplas) > 0 {
		fmt.Fprintln(c.out, "\n*🎯 Triplas*")
		for _, t := range r.Triplas {
			fmt.Fprintf(c.out, "  %s + %s + %s → *%.2f*\n",
				t.Pernas[0].Jogo, t.Pernas[1].Jogo, t.Pernas[2].Jogo, t.OddCombinada)
		}
	}
}

func legenda(p domain.PernaParlay) string {
	return fmt.Sprintf("%s (%s @ %.2f)", p.Jogo, p.Mercado, p.Odd)
}

func pct(v float64) string {
	if v <= 0 {
		return "—"
	}
	return fmt.Sprintf("%.0f", v)
}

func odd(v float64) string {
	if v <= 0 {
		return "—"
	}
	return fmt.Sprintf("%.2f", v)
}

func naoVazio(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// probMin/probMax expõem a faixa do mercado principal no formato WhatsApp.
func probMin(p domain.Prognostico) int {
	if len(p.Mercados) == 0 {
		return 0
	}
	return p.Mercados[0].ProbMin
}

func probMax(p domain.Prognostico) int {
	if len(p.Mercados) == 0 {
		return 0
	}
	return p.Mercados[0].ProbMax
}
