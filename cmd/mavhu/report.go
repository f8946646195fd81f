package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mavhu/models"
	"mavhu/portal/dashboard"
	"mavhu/portal/insight"
)

func reportCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "report <companyId>",
		Short: "Show a company's crop-yield ESG dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := dashboard.New(client)
			ctrl.Start(cmd.Context(), args[0])
			if year != 0 {
				ctrl.SelectYear(cmd.Context(), year)
			}

			snap := ctrl.Snapshot()
			th := resolveTheme(darkUI)
			switch snap.State {
			case dashboard.StateError:
				return fmt.Errorf("%s", snap.Err)
			case dashboard.StateSelectCompany:
				return fmt.Errorf("no company selected")
			}
			if snap.Err != "" {
				// Stale-while-error: the banner rides above the last good view.
				fmt.Println(th.Error.Render(snap.Err))
			}
			renderReport(th, snap)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "reporting year (0 = latest)")
	return cmd
}

func renderReport(th Theme, snap dashboard.Snapshot) {
	r := snap.Report
	info := insight.CompanyInfo(r)
	period := insight.ReportingPeriod(r)

	title := info.Name
	if title == "" {
		title = snap.CompanyID
	}
	fmt.Println(th.Title.Render(fmt.Sprintf("Crop Yield Forecast — %s (%d)", title, period.Year)))
	if len(period.AvailableYears) > 0 {
		fmt.Println(th.Muted.Render(fmt.Sprintf("available years: %v", period.AvailableYears)))
	}

	cards := []string{
		yieldCard(th, r),
		riskCard(th, r),
		carbonCard(th, r),
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if snap.Map.OK {
		fmt.Println(th.Label.Render("map center ") + th.Value.Render(
			fmt.Sprintf("%.5f, %.5f (zoom %d)", snap.Map.Center.Lat, snap.Map.Center.Lon, snap.Map.Zoom)))
	}

	if advisory := insight.SeasonalAdvisory(r); advisory != "" {
		fmt.Println(th.Header.Render("Seasonal advisory"))
		fmt.Println(th.Value.Render(advisory))
	}
	if summary := insight.ExecutiveSummary(r); summary != "" {
		fmt.Println(th.Header.Render("Executive summary"))
		fmt.Println(th.Value.Render(summary))
	}
	if recs := insight.Recommendations(r); len(recs) > 0 {
		fmt.Println(th.Header.Render("Recommendations"))
		for _, rec := range recs {
			prefix := "- "
			if rec.Priority != "" {
				prefix = "- [" + rec.Priority + "] "
			}
			fmt.Println(th.Value.Render(prefix + rec.Action))
		}
	}
}

func yieldCard(th Theme, r *models.CropYieldReport) string {
	s := insight.YieldForecastSummary(r)
	rows := []string{
		th.Header.Render("Yield forecast"),
		th.Label.Render("crop       ") + th.Value.Render(s.CropType),
		th.Label.Render("predicted  ") + th.Value.Render(fmt.Sprintf("%.2f %s", s.PredictedYield, s.Unit)),
		th.Label.Render("confidence ") + confidenceStyle(th, s.ConfidenceLvl).Render(fmt.Sprintf("%.0f%% (%s)", s.Confidence*100, s.ConfidenceLvl)),
	}
	if s.NDVIPeak != nil {
		rows = append(rows, th.Label.Render("ndvi peak  ")+th.Value.Render(fmt.Sprintf("%.3f (%s)", *s.NDVIPeak, s.Trend)))
	}
	return th.Card.Render(strings.Join(rows, "\n"))
}

func riskCard(th Theme, r *models.CropYieldReport) string {
	s := insight.RiskAssessmentSummary(r)
	rows := []string{
		th.Header.Render("Risk assessment"),
		th.Label.Render("overall ") + riskStyle(th, s.OverallLevel).Render(fmt.Sprintf("%.1f (%s)", s.OverallScore, s.OverallLevel)),
	}
	for _, c := range s.Categories {
		rows = append(rows, th.Label.Render(fmt.Sprintf("%-8s", c.Name))+th.Value.Render(fmt.Sprintf("%.1f", c.Score)))
	}
	for _, risk := range s.TopRisks {
		rows = append(rows, th.Warn.Render("! "+risk.Name))
	}
	return th.Card.Render(strings.Join(rows, "\n"))
}

func carbonCard(th Theme, r *models.CropYieldReport) string {
	c := insight.CarbonData(r)
	rows := []string{th.Header.Render("Carbon accounting")}
	for _, y := range c.Years {
		style := th.Good
		if y.Net > 0 {
			style = th.Warn
		}
		rows = append(rows, th.Label.Render(fmt.Sprintf("%d ", y.Year))+
			style.Render(fmt.Sprintf("net %+.1f tCO2e", y.Net)))
	}
	if len(c.Years) == 0 {
		rows = append(rows, th.Muted.Render("no data"))
	}
	return th.Card.Render(strings.Join(rows, "\n"))
}

func confidenceStyle(th Theme, level string) lipgloss.Style {
	switch level {
	case "high":
		return th.Good
	case "low":
		return th.Warn
	}
	return th.Value
}

func riskStyle(th Theme, level string) lipgloss.Style {
	switch level {
	case "high", "critical":
		return th.Error
	case "medium":
		return th.Warn
	}
	return th.Good
}
