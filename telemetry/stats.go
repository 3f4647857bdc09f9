// Package telemetry collects windowed simulation statistics and writes them
// out as structured logs and CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population counts at window end
	Plants    int `csv:"plants"`
	Wanderers int `csv:"wanderers"`
	Grazers   int `csv:"grazers"`
	Pilots    int `csv:"pilots"`

	// Events during window
	GrazerBirths int `csv:"grazer_births"`
	GrazerDeaths int `csv:"grazer_deaths"`
	PlantBirths  int `csv:"plant_births"`
	PlantDeaths  int `csv:"plant_deaths"`

	// Feeding
	Meals          int     `csv:"meals"`
	NutritionEaten float64 `csv:"nutrition_eaten"`

	// Movement
	MovesAccepted  int     `csv:"moves_accepted"`
	MovesRejected  int     `csv:"moves_rejected"`
	RejectRate     float64 `csv:"reject_rate"`
	GrazerRejected int     `csv:"grazer_rejected"`

	// Grazer health distribution (sampled at window end)
	GrazerHealthMean float64 `csv:"grazer_health_mean"`
	GrazerHealthStd  float64 `csv:"grazer_health_std"`
	GrazerHealthP10  float64 `csv:"grazer_health_p10"`
	GrazerHealthP50  float64 `csv:"grazer_health_p50"`
	GrazerHealthP90  float64 `csv:"grazer_health_p90"`

	// Speed of mobile entities
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Age at death of grazers that died during the window
	GrazerLifespanMean float64 `csv:"grazer_lifespan_mean"`
	GrazerLifespanP50  float64 `csv:"grazer_lifespan_p50"`
}

// Summary describes a sample distribution.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes mean, population standard deviation and empirical
// quantiles. An empty sample yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	return Summary{
		Mean: mean,
		Std:  std,
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("plants", s.Plants),
		slog.Int("wanderers", s.Wanderers),
		slog.Int("grazers", s.Grazers),
		slog.Int("pilots", s.Pilots),
		slog.Int("grazer_births", s.GrazerBirths),
		slog.Int("grazer_deaths", s.GrazerDeaths),
		slog.Int("plant_births", s.PlantBirths),
		slog.Int("plant_deaths", s.PlantDeaths),
		slog.Int("meals", s.Meals),
		slog.Float64("nutrition_eaten", s.NutritionEaten),
		slog.Int("moves_accepted", s.MovesAccepted),
		slog.Int("moves_rejected", s.MovesRejected),
		slog.Float64("reject_rate", s.RejectRate),
		slog.Int("grazer_rejected", s.GrazerRejected),
		slog.Float64("grazer_health_mean", s.GrazerHealthMean),
		slog.Float64("grazer_health_std", s.GrazerHealthStd),
		slog.Float64("grazer_health_p10", s.GrazerHealthP10),
		slog.Float64("grazer_health_p50", s.GrazerHealthP50),
		slog.Float64("grazer_health_p90", s.GrazerHealthP90),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("grazer_lifespan_mean", s.GrazerLifespanMean),
		slog.Float64("grazer_lifespan_p50", s.GrazerLifespanP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
