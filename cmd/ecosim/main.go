package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"ecosim/internal/analysis"
	"ecosim/internal/config"
	"ecosim/internal/scenario"
	"ecosim/internal/sim"
)

var (
	prey           float64
	predators      float64
	preyGrowth     float64
	predationRate  float64
	predatorGrowth float64
	predatorDeath  float64
	duration       float64
	steps          int
	configFile     string
	exportFormat   string
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecosim",
		Short: "predator-prey ecosystem simulation lab",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate the ecosystem and report its dynamics",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot population trajectories",
		RunE:  plotPopulations,
	}
	addSimFlags(plotCmd)

	phaseCmd := &cobra.Command{
		Use:   "phase",
		Short: "predator vs prey phase portrait",
		RunE:  phasePortrait,
	}
	addSimFlags(phaseCmd)

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "frequency analysis of the prey cycle",
		RunE:  spectrumAnalysis,
	}
	addSimFlags(spectrumCmd)

	scenariosCmd := &cobra.Command{
		Use:   "scenarios [file]",
		Short: "compare named parameter sets (built-in presets by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareScenarios,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the sampled series to stdout",
		RunE:  exportSeries,
	}
	addSimFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format (csv or json)")

	rootCmd.AddCommand(runCmd, plotCmd, phaseCmd, spectrumCmd, scenariosCmd, presetsCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&prey, "prey", 40, "initial prey population")
	cmd.Flags().Float64Var(&predators, "predators", 9, "initial predator population")
	cmd.Flags().Float64Var(&preyGrowth, "prey-growth", 0.1, "prey growth rate (alpha)")
	cmd.Flags().Float64Var(&predationRate, "predation-rate", 0.02, "predation rate (beta)")
	cmd.Flags().Float64Var(&predatorGrowth, "predator-growth", 0.01, "predator growth rate (delta)")
	cmd.Flags().Float64Var(&predatorDeath, "predator-death", 0.1, "predator death rate (gamma)")
	cmd.Flags().Float64Var(&duration, "time", 200, "simulated time span")
	cmd.Flags().IntVar(&steps, "steps", 1000, "number of sample points")
}

func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override the config file.
	if cmd.Flags().Changed("prey") || configFile == "" {
		cfg.InitialPrey = prey
	}
	if cmd.Flags().Changed("predators") || configFile == "" {
		cfg.InitialPredator = predators
	}
	if cmd.Flags().Changed("prey-growth") || configFile == "" {
		cfg.Rates.PreyGrowth = preyGrowth
	}
	if cmd.Flags().Changed("predation-rate") || configFile == "" {
		cfg.Rates.PredationRate = predationRate
	}
	if cmd.Flags().Changed("predator-growth") || configFile == "" {
		cfg.Rates.PredatorGrowth = predatorGrowth
	}
	if cmd.Flags().Changed("predator-death") || configFile == "" {
		cfg.Rates.PredatorDeath = predatorDeath
	}
	if cmd.Flags().Changed("time") || configFile == "" {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("steps") || configFile == "" {
		cfg.Steps = steps
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	series, err := sim.Simulate(cfg)
	if err != nil {
		return err
	}

	insights, err := analysis.Analyze(series)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("lotka-volterra ecosystem simulation"))
	fmt.Println()

	printStory(series, insights)
	fmt.Println()
	printInsightsTable(insights)

	corr := analysis.Correlation(series.Prey, series.Predator)
	fmt.Printf("\npopulation correlation: %.3f", corr)
	if corr < 0 {
		fmt.Println(subtleStyle.Render("  (negative: typical predator-prey dynamics)"))
	} else {
		fmt.Println(subtleStyle.Render("  (positive: unusual pattern)"))
	}

	fmt.Println()
	plotSeries(series)

	return nil
}

func printStory(series *sim.Series, in analysis.Insights) {
	preyMaxT := series.Time[argmax(series.Prey)]
	predMaxT := series.Time[argmax(series.Predator)]

	fmt.Printf("the ecosystem began with %.0f prey and %.0f predators.\n\n",
		series.Prey[0], series.Predator[0])

	fmt.Println(sectionStyle.Render("prey"))
	fmt.Printf("  peak population %.0f at t=%.0f, lowest point %.1f\n",
		in.MaxPrey, preyMaxT, in.MinPrey)
	fmt.Printf("  %d population cycles observed\n", in.PreyPeaks)

	fmt.Println(sectionStyle.Render("predators"))
	fmt.Printf("  peak population %.0f at t=%.0f, lowest point %.1f\n",
		in.MaxPredator, predMaxT, in.MinPredator)
	fmt.Printf("  %d population cycles observed\n", in.PredatorPeaks)

	fmt.Println(sectionStyle.Render("patterns"))
	if in.PhaseLag > 0 {
		fmt.Printf("  predator peaks lag %.1f time units behind prey\n", in.PhaseLag)
	}
	if in.AvgPreyPeriod > 0 {
		fmt.Printf("  average cycle length %.1f time units\n", in.AvgPreyPeriod)
	}
	fmt.Printf("  final balance: %.0f prey, %.0f predators\n", in.FinalPrey, in.FinalPredator)
	fmt.Printf("  the ecosystem shows %s\n", in.Stability)
}

func printInsightsTable(in analysis.Insights) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Prey", "Predator"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	table.Append([]string{"max", fmtF(in.MaxPrey), fmtF(in.MaxPredator)})
	table.Append([]string{"min", fmtF(in.MinPrey), fmtF(in.MinPredator)})
	table.Append([]string{"final", fmtF(in.FinalPrey), fmtF(in.FinalPredator)})
	table.Append([]string{"peaks", strconv.Itoa(in.PreyPeaks), strconv.Itoa(in.PredatorPeaks)})
	table.Append([]string{"troughs", strconv.Itoa(in.PreyTroughs), strconv.Itoa(in.PredatorTroughs)})
	table.Append([]string{"avg period", fmtF(in.AvgPreyPeriod), fmtF(in.AvgPredatorPeriod)})
	table.Append([]string{"phase lag", fmtF(in.PhaseLag), ""})
	table.Append([]string{"stability", string(in.Stability), ""})

	table.Render()
}

func plotSeries(series *sim.Series) {
	preyGraph := asciigraph.Plot(series.Prey,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("prey population"),
	)
	fmt.Println(preyGraph)
	fmt.Println()

	predGraph := asciigraph.Plot(series.Predator,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("predator population"),
	)
	fmt.Println(predGraph)
}

func plotPopulations(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	series, err := sim.Simulate(cfg)
	if err != nil {
		return err
	}

	plotSeries(series)
	return nil
}

func phasePortrait(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	series, err := sim.Simulate(cfg)
	if err != nil {
		return err
	}

	fmt.Println(sectionStyle.Render("phase space: predator vs prey"))
	fmt.Print(analysis.PhasePortraitToASCII(series, 80, 24))
	fmt.Println(subtleStyle.Render("x: prey, y: predators, S: start, E: end"))
	return nil
}

func spectrumAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	series, err := sim.Simulate(cfg)
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(series.Prey)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (prey)"),
	)
	fmt.Println(graph)
	fmt.Println()

	dt := series.Time[1] - series.Time[0]
	period := analysis.DominantPeriod(series.Prey, dt)
	if period > 0 {
		fmt.Printf("dominant cycle period: %.2f time units\n", period)
	} else {
		fmt.Println("no dominant cycle detected")
	}
	return nil
}

func compareScenarios(cmd *cobra.Command, args []string) error {
	set := scenario.Presets
	dur := scenario.DefaultDuration
	n := scenario.DefaultSteps

	if len(args) == 1 {
		file, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		set = file.Scenarios
		dur = file.Duration
		n = file.Steps
	}

	results, err := scenario.Run(set, dur, n)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scenario", "Max Prey", "Max Pred", "Cycles", "Period", "Phase Lag", "Stability"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, name := range names {
		in, err := analysis.Analyze(results[name])
		if err != nil {
			return fmt.Errorf("scenario %q: %w", name, err)
		}
		table.Append([]string{
			name,
			fmtF(in.MaxPrey),
			fmtF(in.MaxPredator),
			strconv.Itoa(in.PreyPeaks),
			fmtF(in.AvgPreyPeriod),
			fmtF(in.PhaseLag),
			string(in.Stability),
		})
	}

	table.Render()
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := scenario.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPREY\tPREDATORS\tALPHA\tBETA\tDELTA\tGAMMA")
	for _, name := range names {
		p := scenario.Presets[name]
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			name, p.InitialPrey, p.InitialPredator,
			p.Rates.PreyGrowth, p.Rates.PredationRate,
			p.Rates.PredatorGrowth, p.Rates.PredatorDeath)
	}
	return w.Flush()
}

func exportSeries(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	series, err := sim.Simulate(cfg)
	if err != nil {
		return err
	}

	switch exportFormat {
	case "csv":
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()

		if err := w.Write([]string{"time", "prey_population", "predator_population"}); err != nil {
			return err
		}
		for i := 0; i < series.Len(); i++ {
			row := []string{
				strconv.FormatFloat(series.Time[i], 'f', 6, 64),
				strconv.FormatFloat(series.Prey[i], 'f', 6, 64),
				strconv.FormatFloat(series.Predator[i], 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	case "json":
		out := struct {
			Time     []float64 `json:"time"`
			Prey     []float64 `json:"prey_population"`
			Predator []float64 `json:"predator_population"`
		}{series.Time, series.Prey, series.Predator}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s (want csv or json)", exportFormat)
	}
}

func argmax(vals []float64) int {
	idx := 0
	for i, v := range vals {
		if v > vals[idx] {
			idx = i
		}
	}
	return idx
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
