package exporter

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"

	pkgcontext "github.com/flant/dockerhub-pulls-exporter/pkg/context"
	"github.com/flant/dockerhub-pulls-exporter/pkg/hub"
)

const pollInterval = 3 * time.Second

type Fetcher interface {
	FetchRepositories(ctx context.Context, organization string) (*hub.RepositoryList, int, error)
}

type Exporter struct {
	organization string
	fetcher      Fetcher
	interval     time.Duration

	imagePulls     *prometheus.GaugeVec
	completedPolls prometheus.Counter
}

func New(organization string, fetcher Fetcher) *Exporter {
	return &Exporter{
		organization: organization,
		fetcher:      fetcher,
		interval:     pollInterval,

		imagePulls: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "docker_image_pulls",
				Help: "The total number of Docker image pulls",
			},
			[]string{"image", "organization"},
		),
		completedPolls: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "dockerhub_exporter",
				Name:      "completed_polls_total",
				Help:      "Number of Docker Hub polls completed.",
			},
		),
	}
}

// Describe implements prometheus.Collector.
func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	e.imagePulls.Describe(ch)
	e.completedPolls.Describe(ch)
}

// Collect implements prometheus.Collector.
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	e.imagePulls.Collect(ch)
	e.completedPolls.Collect(ch)
}

// Run blocks until ctx is done. Each poll starts one interval after the
// previous one returned, the first one an interval after Run is called.
func (e *Exporter) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(e.interval):
	}

	wait.UntilWithContext(ctx, e.Poll, e.interval)
}

func (e *Exporter) Poll(ctx context.Context) {
	defer e.completedPolls.Inc()

	log := pkgcontext.GetLogger(ctx).WithField("organization", e.organization)
	ctx = pkgcontext.WithLogger(ctx, log)

	list, code, err := e.fetcher.FetchRepositories(ctx, e.organization)
	switch {
	case errors.Is(err, hub.ErrMalformedPayload):
		logInvalidData(log, err)
		return
	case err != nil:
		// already logged by the client
		return
	}

	if !list.HasRepositories() {
		log.Errorf("The DOCKERHUB ORGANIZATION %s is empty or does not exist.", e.organization)
		return
	}

	repos, err := list.Repositories()
	if err != nil {
		logInvalidData(log, err)
		return
	}

	log.WithField("repositories", len(repos)).Infof("Successfully retrieved metrics from DockerHub with response code %d", code)

	for _, repo := range repos {
		e.imagePulls.WithLabelValues(*repo.Name, *repo.Namespace).Set(float64(*repo.PullCount))
	}
}

func logInvalidData(log *logrus.Entry, err error) {
	log.Errorf("Host responded but data isn't valid, got error while processing the response: %s", err)
}
