package util

import (
	"io"

	"sos-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotFacilities renders an HTML map with one scatter series per facility
// category and writes it to w.
func PlotFacilities(facilities []models.Facility, w io.Writer) error {
	// Group scatter points per category so each category gets its own
	// series (and legend entry).
	series := make(map[string][]opts.GeoData)
	for _, f := range facilities {
		lat, lng := f.Coordinates()
		series[f.Category] = append(series[f.Category], opts.GeoData{
			Name:  f.Name,
			Value: []float64{lng, lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Emergency Facilities Map",
			Width:     "1000px",
			Height:    "700px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	for category, points := range series {
		geo.AddSeries(category, types.ChartScatter, points,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}

	return geo.Render(w)
}
