package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/midbel/linechart"
	"github.com/midbel/linechart/config"
	"github.com/midbel/linechart/dataset"
	"github.com/sirupsen/logrus"
)

const maxBodySize = 1 << 20

// Request is the body of a POST on /render. Settings sections are sent as is
// to the setters of the graph.
type Request struct {
	Dataset    any              `json:"dataset"`
	Format     string           `json:"format"`
	Width      float64          `json:"width"`
	Height     float64          `json:"height"`
	PixelRatio float64          `json:"pixelRatio"`
	Size       *config.Size     `json:"size"`
	MaxXLabels *int             `json:"maxXLabels"`
	Titles     map[string]any   `json:"titles"`
	Colors     []map[string]any `json:"colors"`
	Font       map[string]any   `json:"font"`
}

func (r Request) merge(base *config.Config) *config.Config {
	cfg := *base
	if r.Format != "" {
		cfg.Format = r.Format
	}
	if r.Width != 0 {
		cfg.Width = r.Width
	}
	if r.Height != 0 {
		cfg.Height = r.Height
	}
	if r.PixelRatio != 0 {
		cfg.PixelRatio = r.PixelRatio
	}
	if r.Size != nil {
		cfg.Size = r.Size
	}
	if r.MaxXLabels != nil {
		cfg.MaxXLabels = r.MaxXLabels
	}
	if r.Titles != nil {
		cfg.Titles = r.Titles
	}
	if r.Colors != nil {
		cfg.Colors = r.Colors
	}
	if r.Font != nil {
		cfg.Font = r.Font
	}
	return &cfg
}

// Handler renders the datasets sent to it with the settings of base
// overridden by the ones of the request.
func Handler(base *config.Config) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		var (
			req Request
			err error
		)
		switch r.Method {
		case http.MethodGet:
			req, err = parseQuery(r)
		case http.MethodPost:
			req, err = parseBody(w, r)
		default:
			w.Header().Set("Allow", "GET, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err != nil {
			logrus.Warnf("Invalid render request: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cfg := req.merge(base)
		buf, ctype, err := render(cfg, req.Dataset)
		if err != nil {
			renderCounter.WithLabelValues(cfg.Format, "error").Inc()
			logrus.Warnf("Failed to render graph: %v", err)
			http.Error(w, err.Error(), statusCode(err))
			return
		}
		renderCounter.WithLabelValues(cfg.Format, "ok").Inc()
		w.Header().Set("Content-Type", ctype)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
	return http.HandlerFunc(fn)
}

func render(cfg *config.Config, data any) (*bytes.Buffer, string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	values, err := linechart.DatasetFrom(data)
	if err != nil {
		return nil, "", err
	}
	datasetSize.Observe(float64(len(values)))

	g, surface, err := cfg.NewGraph()
	if err != nil {
		return nil, "", err
	}
	if err := g.Render(values); err != nil {
		return nil, "", err
	}
	logrus.Debugf("Rendered %d values as %s (%s)", len(values), cfg.Format, g.Size())

	var buf bytes.Buffer
	if err := surface.Export(&buf); err != nil {
		return nil, "", err
	}
	return &buf, surface.ContentType(), nil
}

func parseQuery(r *http.Request) (Request, error) {
	var (
		req Request
		qs  = r.URL.Query()
	)
	values, err := dataset.Parse(qs.Get("data"))
	if err != nil {
		return req, err
	}
	req.Dataset = values
	req.Format = qs.Get("format")

	for _, p := range []struct {
		Name string
		Ptr  *float64
	}{
		{Name: "width", Ptr: &req.Width},
		{Name: "height", Ptr: &req.Height},
		{Name: "ratio", Ptr: &req.PixelRatio},
	} {
		str := qs.Get(p.Name)
		if str == "" {
			continue
		}
		if *p.Ptr, err = strconv.ParseFloat(str, 64); err != nil {
			return req, fmt.Errorf("%s: invalid number %q", p.Name, str)
		}
	}
	if x, y := qs.Get("xAxis"), qs.Get("yAxis"); x != "" || y != "" {
		req.Titles = make(map[string]any)
		if x != "" {
			req.Titles[linechart.XAxis] = x
		}
		if y != "" {
			req.Titles[linechart.YAxis] = y
		}
	}
	return req, nil
}

func parseBody(w http.ResponseWriter, r *http.Request) (Request, error) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("invalid body: %w", err)
	}
	return req, nil
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, linechart.ErrInvalidArgument),
		errors.Is(err, linechart.ErrInvalidDataset),
		errors.Is(err, linechart.ErrInvalidSurface),
		errors.Is(err, linechart.ErrNotImplemented),
		errors.Is(err, config.ErrConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
