package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/midbel/linechart/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	defaultLogLevel = "info"
	defaultHttpPort = "8080"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests processed, labeled by status code and method.",
		},
		[]string{"code", "method"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests.",
		},
		[]string{"handler", "method"},
	)
	renderCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linechart_render_total",
			Help: "Total number of graphs rendered, labeled by format and result.",
		},
		[]string{"format", "result"},
	)
	datasetSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linechart_dataset_values",
			Help:    "Number of values of the rendered datasets.",
			Buckets: prometheus.ExponentialBuckets(2, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, renderCounter, datasetSize)
}

func main() {
	var (
		file = flag.String("config", os.Getenv("LINECHART_CONFIG"), "configuration file")
		port = flag.String("port", os.Getenv("HTTP_PORT"), "listening port")
	)
	flag.Parse()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = defaultLogLevel
	}
	if level, err := logrus.ParseLevel(logLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("Invalid LOG_LEVEL: %s", logLevel)
	}
	if *port == "" {
		logrus.Debugf("No HTTP_PORT specified, defaulting to: %s", defaultHttpPort)
		*port = defaultHttpPort
	}
	cfg, err := config.LoadOrDefault(*file)
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	http.Handle("/render", promhttp.InstrumentHandlerDuration(
		httpDuration.MustCurryWith(prometheus.Labels{"handler": "render"}),
		promhttp.InstrumentHandlerCounter(httpRequests, Handler(cfg)),
	))

	logrus.Infof("Starting server on port: %s", *port)
	logrus.Fatal(http.ListenAndServe(":"+*port, nil))
}
