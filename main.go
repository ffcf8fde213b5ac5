package main

import (
	"net"
	"net/http"

	"github.com/flant/dockerhub-pulls-exporter/pkg/config"
	"github.com/flant/dockerhub-pulls-exporter/pkg/exporter"
	"github.com/flant/dockerhub-pulls-exporter/pkg/handlers"
	"github.com/flant/dockerhub-pulls-exporter/pkg/hub"
	"github.com/flant/dockerhub-pulls-exporter/pkg/logging"

	"github.com/sirupsen/logrus"

	"github.com/prometheus/client_golang/prometheus"

	"k8s.io/sample-controller/pkg/signals"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.AddHook(logging.NewPrometheusHook(prometheus.DefaultRegisterer))

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Couldn't load configuration: %s", err)
	}

	// the first signal stops polling, a second one exits right away
	ctx := signals.SetupSignalHandler()

	pullsExporter := exporter.New(cfg.Organization, hub.NewClient(hub.DefaultBaseURL))
	prometheus.MustRegister(pullsExporter)

	listener, err := net.Listen("tcp", cfg.ListenAddress())
	if err != nil {
		logrus.Fatalf("Couldn't bind metrics listener: %s", err)
	}

	go func() {
		logrus.Fatal(http.Serve(listener, handlers.NewMux(prometheus.DefaultGatherer)))
	}()

	handlers.UpdateHealth(true)
	logrus.WithField("organization", cfg.Organization).Infof("Serving metrics on %s", listener.Addr())

	pullsExporter.Run(ctx)
}
