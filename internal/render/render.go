package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/fourier-explorer/internal/explorer"
	"github.com/RyanBlaney/fourier-explorer/pkg/signal"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// Renderer writes analysis results in the configured format.
type Renderer struct {
	format    Format
	precision int
	w         io.Writer
	titler    cases.Caser
}

// NewRenderer creates a renderer for the given format. Unknown formats
// fall back to table.
func NewRenderer(format string, precision int, w io.Writer) *Renderer {
	f := Format(format)
	switch f {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
	default:
		f = FormatTable
	}
	return &Renderer{
		format:    f,
		precision: precision,
		w:         w,
		titler:    cases.Title(language.English),
	}
}

func (r *Renderer) float(v float64) string {
	return strconv.FormatFloat(v, 'f', r.precision, 64)
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported structured format: %s", r.format)
	}
}

// Resolution renders a resolved orthogonal period.
func (r *Renderer) Resolution(res *explorer.Resolution) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(res)
	default:
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("frequency"), r.float(res.Omega))
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("analysis period"), r.float(res.AnalysisPeriod))
		fmt.Fprintf(tw, "%s:\t%s (%d/%d pi)\n", r.titler.String("orthogonal period"), r.float(res.Period), res.PiRatio.Num, res.PiRatio.Den)
		for i, ratio := range res.ComponentRatios {
			fmt.Fprintf(tw, "%s %d:\t%d/%d pi\n", r.titler.String("component period"), i+1, ratio.Num, ratio.Den)
		}
		return tw.Flush()
	}
}

// Result renders a single-frequency analysis result.
func (r *Renderer) Result(res *explorer.Result) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(res)
	case FormatCSV:
		w := csv.NewWriter(r.w)
		if err := w.Write([]string{"omega", "period", "cosine", "sine", "cosine_display", "sine_display", "discovered"}); err != nil {
			return err
		}
		if err := w.Write(r.resultRow(res)); err != nil {
			return err
		}
		w.Flush()
		return w.Error()
	default:
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("frequency"), r.float(res.Omega))
		fmt.Fprintf(tw, "%s:\t%s (%d/%d pi)\n", r.titler.String("period"), r.float(res.Period), res.PiRatio.Num, res.PiRatio.Den)
		fmt.Fprintf(tw, "%s:\t%s (%s)\n", r.titler.String("cosine coefficient"), res.Cosine.Display, r.float(res.Cosine.Value))
		fmt.Fprintf(tw, "%s:\t%s (%s)\n", r.titler.String("sine coefficient"), res.Sine.Display, r.float(res.Sine.Value))
		if res.Discovered {
			fmt.Fprintf(tw, "%s:\tcomponent at frequency %s\n", r.titler.String("discovered"), r.float(res.MatchedFrequency))
		}
		return tw.Flush()
	}
}

func (r *Renderer) resultRow(res *explorer.Result) []string {
	return []string{
		r.float(res.Omega),
		r.float(res.Period),
		r.float(res.Cosine.Value),
		r.float(res.Sine.Value),
		res.Cosine.Display,
		res.Sine.Display,
		strconv.FormatBool(res.Discovered),
	}
}

// Summary renders a full sweep.
func (r *Renderer) Summary(sum *explorer.Summary) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(sum)
	case FormatCSV:
		w := csv.NewWriter(r.w)
		if err := w.Write([]string{"omega", "period", "cosine", "sine", "cosine_display", "sine_display", "discovered"}); err != nil {
			return err
		}
		for _, res := range sum.Results {
			if err := w.Write(r.resultRow(res)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	default:
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "OMEGA\tPERIOD\tCOSINE\tSINE\tDISCOVERED\n")
		for _, res := range sum.Results {
			mark := ""
			if res.Discovered {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				r.float(res.Omega), r.float(res.Period),
				res.Cosine.Display, res.Sine.Display, mark)
		}
		fmt.Fprintf(tw, "\n%s:\t%d\n", r.titler.String("components discovered"), sum.DiscoveredCount)
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("display period"), r.float(sum.DisplayPeriod))
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("max magnitude"), r.float(sum.MaxMagnitude))
		return tw.Flush()
	}
}

// Verify renders a quadrature/Goertzel cross-check.
func (r *Renderer) Verify(v *explorer.VerifyResult) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(v)
	default:
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("frequency"), r.float(v.Omega))
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("quadrature magnitude"), r.float(v.QuadratureMagnitude))
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("goertzel amplitude"), r.float(v.GoertzelAmplitude))
		fmt.Fprintf(tw, "%s:\t%s\n", r.titler.String("deviation"), r.float(v.Deviation))
		return tw.Flush()
	}
}

// Spectrum renders FFT magnitude bins.
func (r *Renderer) Spectrum(bins []explorer.SpectrumBin) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(bins)
	case FormatCSV:
		w := csv.NewWriter(r.w)
		if err := w.Write([]string{"omega", "magnitude"}); err != nil {
			return err
		}
		for _, b := range bins {
			if err := w.Write([]string{r.float(b.Omega), r.float(b.Magnitude)}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	default:
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "OMEGA\tMAGNITUDE\n")
		for _, b := range bins {
			fmt.Fprintf(tw, "%s\t%s\n", r.float(b.Omega), r.float(b.Magnitude))
		}
		return tw.Flush()
	}
}

// seriesRow mirrors the index-aligned inside/outside partition. NaN "no
// data" markers become nil so JSON and YAML stay well formed.
type seriesRow struct {
	Time    float64  `json:"time"`
	Inside  *float64 `json:"inside"`
	Outside *float64 `json:"outside"`
}

func seriesRows(inside, outside signal.Series) []seriesRow {
	rows := make([]seriesRow, len(inside))
	for i := range inside {
		rows[i] = seriesRow{Time: inside[i].Time}
		if !math.IsNaN(inside[i].Value) {
			v := inside[i].Value
			rows[i].Inside = &v
		}
		if i < len(outside) && !math.IsNaN(outside[i].Value) {
			v := outside[i].Value
			rows[i].Outside = &v
		}
	}
	return rows
}

// Series renders a partitioned display series.
func (r *Renderer) Series(inside, outside signal.Series) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(seriesRows(inside, outside))
	case FormatCSV:
		w := csv.NewWriter(r.w)
		if err := w.Write([]string{"time", "inside", "outside"}); err != nil {
			return err
		}
		for _, row := range seriesRows(inside, outside) {
			rec := []string{r.float(row.Time), "", ""}
			if row.Inside != nil {
				rec[1] = r.float(*row.Inside)
			}
			if row.Outside != nil {
				rec[2] = r.float(*row.Outside)
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	default:
		return fmt.Errorf("series table output requires the chart renderer")
	}
}
