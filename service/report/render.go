package report

import (
	"fmt"
	"github.com/viant/tasksetgen/model"
	"io"
	"math"
	"strings"
)

const (
	red    = "\033[91m"
	green  = "\033[92m"
	yellow = "\033[93m"
	reset  = "\033[0m"
)

var ruler = strings.Repeat("=", 40)

// Renderer writes human-readable summaries.
type Renderer struct {
	// Color enables ANSI highlighting of deviations, warnings and locations.
	Color bool
}

func (r *Renderer) paint(color, text string) string {
	if !r.Color {
		return text
	}
	return color + text + reset
}

// Start announces the requirement about to be generated.
func (r *Renderer) Start(w io.Writer, req *model.Requirement) error {
	name := ""
	if req != nil {
		name = req.Name
	}
	_, err := fmt.Fprintf(w, "Generating taskset for test requirements: %s\n", name)
	return err
}

// Outcome writes the per-requirement block.
func (r *Renderer) Outcome(w io.Writer, outcome *Outcome) error {
	if !outcome.Succeeded() {
		_, err := fmt.Fprintf(w, "\n%s\n", r.paint(red, fmt.Sprintf("Error: %v", outcome.Err)))
		return err
	}
	req := outcome.Requirement
	taskset := outcome.Result.Taskset
	actual := actualUtilization(taskset)
	deviation := model.Round2(math.Abs(actual - req.Utilization))
	deviationText := fmt.Sprintf("%.2f", deviation)
	if deviation > 0 {
		deviationText = r.paint(yellow, deviationText)
	}
	unique := taskset.UniquePeriods()
	uniqueText := fmt.Sprintf("%v", unique)
	if unique != req.UniquePeriods {
		uniqueText = r.paint(yellow, uniqueText)
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "\n%s\n", ruler)
	fmt.Fprintf(b, "Number of tasks: %d\n", req.Size)
	fmt.Fprintf(b, "Utilization (requested/taskset/deviation): %.2f/%.2f/%s\n", req.Utilization, actual, deviationText)
	fmt.Fprintf(b, "Hyperperiod: %d\n", taskset.Hyperperiod())
	fmt.Fprintf(b, "Unique periods: %s\n", uniqueText)
	if outcome.UniqueMissed() {
		fmt.Fprintf(b, "%s\n", r.paint(yellow, "Warning: Requested unique periods not possible for this request!"))
	}
	fmt.Fprintf(b, "%s\n\n", ruler)
	if outcome.Location != "" {
		fmt.Fprintf(b, "Taskset stored in: %s\n", r.paint(green, outcome.Location))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Footer writes the batch totals followed by the completion marker.
func (r *Renderer) Footer(w io.Writer, summary *Summary) error {
	_, err := fmt.Fprintf(w, "\nGenerated %d of %d tasksets (%d failed)\n%s\n",
		summary.Succeeded(), len(summary.Outcomes), summary.Failed(), r.paint(green, "Done!"))
	return err
}

// actualUtilization is the unrounded Σ WCET/period.
func actualUtilization(taskset *model.Taskset) float64 {
	total := 0.0
	for _, task := range taskset.Tasks() {
		if task.Period > 0 {
			total += float64(task.WCET) / float64(task.Period)
		}
	}
	return total
}
