// Package console is the terminal front end: it paints the view models the
// core hands over and shows notifications. It sits outside the core on the
// collaborator boundary, standing in for the browser rendering layer.
package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/dispatch"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/dto"
)

// Renderer paints dashboard surfaces onto a writer.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) RenderTable(viewID string, rows []dto.UserRow) {
	fmt.Fprintf(r.out, "\n== %s ==\n", viewID)
	tw := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tEMAIL\tSTATUS\tPLAN\tLAST ACTIVITY")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t[%s] %s\t%s\t%s\t%s\t%s\n",
			row.ID, row.Initials, row.Name, row.Email, row.Status, row.Plan, row.LastActivity)
	}
	tw.Flush()
}

func (r *Renderer) RenderChart(chartID string, data dto.ChartData) {
	fmt.Fprintf(r.out, "\n== %s ==\n", chartID)
	for _, ds := range data.Datasets {
		fmt.Fprintf(r.out, "%s (%s):\n", ds.Label, ds.Color)
		max := 1
		for _, v := range ds.Data {
			if v > max {
				max = v
			}
		}
		for i, label := range data.Labels {
			bar := strings.Repeat("#", ds.Data[i]*40/max)
			fmt.Fprintf(r.out, "  %-4s %6d %s\n", label, ds.Data[i], bar)
		}
	}
}

func (r *Renderer) RenderPlanCard(card dto.PlanCard) {
	fmt.Fprintf(r.out, "\n== plan-card ==\n%s  %s\n", card.Name, card.Price)
	for _, f := range card.Features {
		fmt.Fprintf(r.out, "  * %s\n", f)
	}
}

// Notifier prints transient toast-style feedback.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Notify(message string, level dispatch.Level) {
	fmt.Fprintf(n.out, "[%s] %s\n", level, message)
}
