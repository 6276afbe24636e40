package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anggasct/points"
	"github.com/anggasct/points/layout"
	"github.com/anggasct/points/pkg/observers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		file        string
		metricsAddr string
		strict      bool
	)
	cmd := &cobra.Command{
		Use:   "run [junction:DIRECTION...]",
		Short: "Route vehicle arrivals through layout junctions",
		Long: `Loads the layout file and feeds each arrival to its junction, printing the exit direction.
Arrivals are read from the arguments, or one or more per line from stdin when none are given.
Lines starting with # are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := commandLogger(cmd)
			if err != nil {
				return err
			}

			y, err := layout.Load(file)
			if err != nil {
				return err
			}

			validation := observers.NewValidationObserver()
			opts := []points.Option{
				points.WithObserver(observers.NewLoggingObserver(logger)),
				points.WithObserver(validation),
			}
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				metrics, err := observers.NewMetricsObserver(reg)
				if err != nil {
					return err
				}
				opts = append(opts, points.WithObserver(metrics))
				stop := serveMetrics(metricsAddr, reg, logger)
				defer stop()
			}

			junctions, err := y.Build(opts...)
			if err != nil {
				return err
			}

			r := &runner{
				junctions: junctions,
				out:       cmd.OutOrStdout(),
				logger:    logger,
				strict:    strict,
			}
			if len(args) > 0 {
				err = r.feed(strings.NewReader(strings.Join(args, "\n")))
			} else {
				err = r.feed(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(r.out, "%d arrivals, %d blocked, %d rejected\n", r.arrivals, r.blocked, r.rejected)
			for _, violation := range validation.GetViolations() {
				logger.Info("violation", "detail", violation)
			}
			if r.rejected > 0 {
				return fmt.Errorf("%d arrivals rejected", r.rejected)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "layout.yaml", "Layout file")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running (e.g. :2112)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first rejected arrival")
	return cmd
}

// runner feeds arrivals to the junctions of a layout
type runner struct {
	junctions map[string]*points.Junction
	out       io.Writer
	logger    *slog.Logger
	strict    bool

	arrivals int
	blocked  int
	rejected int
}

func (r *runner) feed(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if err := r.arrive(token); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func (r *runner) arrive(token string) error {
	name, rawDirection, err := splitArrival(token)
	if err != nil {
		return err
	}
	j, ok := r.junctions[name]
	if !ok {
		return fmt.Errorf("unknown junction %q", name)
	}
	direction, err := points.ParseDirection(rawDirection)
	if err != nil {
		return fmt.Errorf("arrival %q: %w", token, err)
	}

	from := j.State()
	exit, err := j.Enter(direction)
	if err != nil {
		if r.strict || !errors.Is(err, points.ErrInvalidEntryDirection) {
			return err
		}
		r.rejected++
		fmt.Fprintf(r.out, "%s %s rejected: %v\n", name, direction, err)
		return nil
	}

	r.arrivals++
	suffix := ""
	if exit == points.None {
		r.blocked++
		suffix = " (blocked)"
	}
	fmt.Fprintf(r.out, "%s %s -> %s%s (state %d->%d)\n", name, direction, exit, suffix, from, j.State())
	return nil
}

// splitArrival splits "name:DIRECTION" at the last colon
func splitArrival(token string) (string, string, error) {
	i := strings.LastIndex(token, ":")
	if i <= 0 || i == len(token)-1 {
		return "", "", fmt.Errorf("arrival %q must look like junction:DIRECTION", token)
	}
	return token[:i], token[i+1:], nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("starting metrics server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
