package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/warp/jade-forecast/factory"
	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/rewards"
)

// ─── calc ───────────────────────────────────────────────────────────────────

func newCalcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Forecast a saved form",
		Long: `Forecast from a JSON form file (the same body POST /api/forecast takes).
Use --file - to read the form from stdin.`,
		Example: `  forecast calc --file plan.json
  forecast calc --file plan.json --today 2027-01-01`,
		Args: cobra.NoArgs,
		RunE: runCalc,
	}
	cmd.Flags().StringP("file", "f", "", "Form JSON file (- for stdin)")
	cmd.Flags().String("today", "", "Pretend today is this date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runCalc(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	now, err := today(cmd)
	if err != nil {
		return err
	}
	body, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	raw, err := factory.Decode(body)
	if err != nil {
		return err
	}
	req, err := factory.Build(raw, now)
	if err != nil {
		var verrs generic.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
		}
		return err
	}

	printResult(cmd.OutOrStdout(), rewards.NewCalculator(cat).Calculate(req, now))
	return nil
}

func printResult(out io.Writer, r rewards.Result) {
	fmt.Fprintf(out, "Forecast %s (%d days)\n\n", r.Period, r.Period.Days())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "SOURCE\tJADES\tPASSES\t")
	fmt.Fprintf(w, "starting\t%s\t%s\t\n", r.StellarJades.Starting.Value, r.LimitedPasses.Starting.Value)
	for _, name := range stepOrder(r.Steps) {
		jades := r.Steps.Get(name, rewards.UnitJades).Value
		passes := r.Steps.Get(name, rewards.UnitPasses).Value
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", name, jades, passes)
	}
	fmt.Fprintf(w, "gained\t%s\t%s\t\n", r.StellarJades.Gained.Value, r.LimitedPasses.Gained.Value)
	fmt.Fprintf(w, "total\t%s\t%s\t\n", r.StellarJades.Total.Value, r.LimitedPasses.Total.Value)
	w.Flush()

	fmt.Fprintf(out, "\nPulls: %d (%d from jades + %d passes)\n", r.Pulls.Total, r.Pulls.FromJades, r.Pulls.FromPasses)

	recs := r.Recurrences()
	if len(recs) == 0 {
		return
	}
	names := make([]string, 0, len(recs))
	for name := range recs {
		names = append(names, string(name))
	}
	sort.Strings(names)

	fmt.Fprintln(out, "\nSeasons:")
	for _, name := range names {
		rec := recs[rewards.StepName(name)]
		fmt.Fprintf(out, "  %s: %d claimable, next closes in %d days\n", name, rec.Count, rec.DaysRemaining)
	}
}

// stepOrder lists each source once, in breakdown order.
func stepOrder(b rewards.Breakdown) []rewards.StepName {
	seen := map[rewards.StepName]bool{}
	var names []rewards.StepName
	for _, s := range b.Steps() {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}

// ─── presets ────────────────────────────────────────────────────────────────

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Print the built-in profiles as form JSON",
		Long: `Print each built-in profile as a form body. Save one to a file, set
end_date, and pass it to 'forecast calc'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			forms := map[string]factory.RequestJSON{}
			for _, p := range rewards.Presets() {
				forms[p.ID] = factory.ToJSON(p.Request)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(forms)
		},
	}
}
