package app

import (
	"io"
	"log"
	"os"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/throughput/pkg/rate"
	"code.cloudfoundry.org/throughput/pkg/sink"
	"code.cloudfoundry.org/throughput/pkg/store"
	"code.cloudfoundry.org/throughput/pkg/tap"
	"code.cloudfoundry.org/throughput/pkg/web"
)

// PipeMeter copies stdin to stdout, reporting throughput to stderr and,
// when a port is configured, serving recent observations over HTTP.
type PipeMeter struct {
	cfg    Config
	logger lager.Logger
	server *web.Server
	src    io.Reader
	dst    io.Writer
}

// New returns an initialized PipeMeter.
func New(cfg Config) *PipeMeter {
	logger := lager.NewLogger("pipemeter")
	logger.RegisterSink(lager.NewWriterSink(cfg.LogWriter, lager.INFO))

	windowCfg := rate.NewWindowConfig()
	windowCfg.Set(cfg.ReportWindow)

	agg := store.NewAggregator(
		store.WithMaxBuckets(cfg.MaxRateBuckets),
		store.WithLogger(logger.Session("aggregator")),
	)

	var server *web.Server
	if cfg.Port != 0 {
		opts := []web.ServerOption{
			web.WithLogWriter(cfg.LogWriter),
			web.WithPollInterval(cfg.ReportWindow),
		}
		if cfg.BasicAuthCreds.Username != "" {
			opts = append(opts, web.WithBasicAuth(
				cfg.BasicAuthCreds.Username,
				cfg.BasicAuthCreds.Password,
			))
		}

		server = web.NewServer(cfg.Port, agg, opts...)
	}

	src := tap.NewReader(os.Stdin,
		sink.NewTeeSink(sink.NewStderrSink(), agg),
		rate.WithWindowConfig(windowCfg),
	)

	return &PipeMeter{
		cfg:    cfg,
		logger: logger,
		server: server,
		src:    src,
		dst:    os.Stdout,
	}
}

// Run copies stdin to stdout until EOF. This is a blocking method.
func (p *PipeMeter) Run() {
	if p.server != nil {
		go p.server.Serve()
	}

	p.logger.Info("starting")
	if _, err := io.Copy(p.dst, p.src); err != nil {
		log.Fatalf("copy failed: %s", err)
	}
	p.logger.Info("done")
}

// Stop shuts down the observation server.
func (p *PipeMeter) Stop() {
	if p.server != nil {
		p.server.Stop()
	}
}
