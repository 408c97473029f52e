package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/cli/config"
	controller "github.com/CatsAndProcurement/FR-Data-Analysis/pkg/controller/http"
	slackCtrl "github.com/CatsAndProcurement/FR-Data-Analysis/pkg/controller/slack"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/usecase"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/async"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(repoCfg *config.Repository, slackCfg *config.Slack) *cli.Command {
	var (
		serverCfg   config.Server
		registryCfg config.Registry
		cacheCfg    config.Cache
	)

	flags := joinFlags(
		serverCfg.Flags(),
		registryCfg.Flags(),
		cacheCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP API server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting frtally server",
				slog.Any("server", serverCfg),
				slog.Any("registry", registryCfg),
				slog.Any("cache", cacheCfg),
				slog.Any("repository", *repoCfg),
				slog.Any("slack", *slackCfg),
			)

			profile, err := registryCfg.Resolve(c)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			m := metrics.New(reg)

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safeClose(ctx, "repository", repo.Close)

			registry, closeCache, err := cacheCfg.Configure(ctx, registryCfg.Configure(), m)
			if err != nil {
				return err
			}
			defer safeClose(ctx, "search cache", closeCache)

			var tasks async.Group
			opts := []usecase.ReportOption{
				usecase.WithBoundPolicy(profile.Bound),
				usecase.WithMetrics(m),
			}
			if notifier := slackCfg.Configure(logger); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier), usecase.WithAsyncNotify(&tasks))
			}
			reportUC := usecase.NewReport(registry, repo, opts...)

			serverOpts := []controller.ServerOption{
				controller.WithAllowedOrigins(serverCfg.AllowedOrigins),
				controller.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
				controller.WithQueryDefaults(profile),
			}
			if slackCfg.IsCommandEnabled() {
				slackHandler := slackCtrl.NewHandler(slackCfg.SigningSecret, reportUC, &tasks,
					slackCtrl.WithQueryDefaults(profile))
				serverOpts = append(serverOpts, controller.WithSlackCommandHandler(slackHandler.HandleCommand))
			}
			server := controller.NewServer(ctx, serverCfg.Addr, reportUC, serverOpts...)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				logger.Info("Shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				if err := tasks.Wait(shutdownCtx); err != nil {
					return goerr.Wrap(err, "background tasks did not finish")
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
