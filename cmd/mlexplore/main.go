// Command mlexplore serves the interactive cluster explorer over HTTP.
//
// It loads a labeled CSV dataset (the bundled iris data by default),
// projects it to 2D once at startup, and then serves a scatter page whose
// cluster count is driven by the ?k= query parameter. Each request
// reclusters the source features for the requested count and renders the
// color-coded layout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/TrevorS/mlexplore"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "listen address")
		csvPath    = flag.String("csv", "", "labeled dataset CSV (last column is the class); default: bundled iris")
		projection = flag.String("projection", "pca", "2D projection: pca or mds")
		initialK   = flag.Int("k", 3, "cluster count used when ?k= is absent")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	ds, err := loadDataset(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("csv", *csvPath).Msg("load dataset")
	}

	var proj mlexplore.Projection
	switch *projection {
	case "pca":
		proj = mlexplore.PCA{}
	case "mds":
		proj = mlexplore.MDS{}
	default:
		log.Fatal().Str("projection", *projection).Msg("unknown projection (want pca or mds)")
	}

	layout, err := proj.Project(ds.Features)
	if err != nil {
		log.Fatal().Err(err).Msg("project dataset")
	}
	log.Info().
		Int("samples", ds.NumSamples()).
		Int("features", ds.NumFeatures()).
		Str("projection", *projection).
		Msg("dataset projected")

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		k := *initialK
		if raw := r.URL.Query().Get("k"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, fmt.Sprintf("k must be an integer, got %q", raw), http.StatusBadRequest)
				return
			}
			k = parsed
		}

		exp, err := mlexplore.NewExplorer(mlexplore.ExplorerConfig{
			Features: ds.Features,
			Layout:   layout,
			Surface:  &mlexplore.ScatterHTML{W: w},
			Title:    fmt.Sprintf("k-means over %s layout (k=%d)", *projection, k),
			XLabel:   "component 1",
			YLabel:   "component 2",
			Logger:   &log,
		})
		if err != nil {
			log.Error().Err(err).Msg("build explorer")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		start := time.Now()
		if err := exp.SetClusterCount(k); err != nil {
			if errors.Is(err, mlexplore.ErrClusterCountOutOfRange) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error().Err(err).Int("k", k).Msg("recompute failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		log.Info().Int("k", k).Dur("took", time.Since(start)).Msg("rendered")
	})

	log.Info().Str("addr", *addr).Msg("serving cluster explorer")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func loadDataset(path string) (*mlexplore.Dataset, error) {
	if path == "" {
		return mlexplore.Iris(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mlexplore.LoadCSV(f, mlexplore.CSVConfig{})
}
