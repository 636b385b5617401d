package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigcalc/internal/biguint"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/memory"
	"github.com/agbru/bigcalc/internal/metrics"
)

var tracer = otel.Tracer("github.com/agbru/bigcalc/internal/app")

// evaluation is the outcome of one run, before presentation.
type evaluation struct {
	result cli.Result
	runs   []cli.StrategyRun
}

// runCalculate orchestrates the evaluation of one expression.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ctx, span := tracer.Start(ctx, "bigcalc.evaluate", trace.WithAttributes(
		attribute.String("bigcalc.op", a.Config.Operation),
		attribute.String("bigcalc.algo", a.Config.Algo),
	))
	defer span.End()

	err := a.calculate(ctx, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.reportError(err)
	}
	return apperrors.ExitCode(err)
}

func (a *Application) calculate(ctx context.Context, out io.Writer) error {
	x, y, err := a.operands()
	if err != nil {
		return err
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("bigcalc.limbs_a", x.Size()),
		attribute.Int("bigcalc.limbs_b", y.Size()),
	)

	strategies, err := a.strategies()
	if err != nil {
		return err
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, x, y, out)
		if a.Config.Operation == config.OpMul {
			cli.PrintExecutionMode(strategies, out)
		} else {
			fmt.Fprintf(out, "\n--- Starting Execution ---\n")
		}
	}

	collector := metrics.NewCollector()
	mult := biguint.NewMultiplier(
		biguint.WithThresholds(a.Config.Thresholds()),
		biguint.WithObserver(collector),
		biguint.WithLogger(logging.ZerologOf(a.Logger)),
	)

	gc := memory.NewGCController(a.Config.GCMode, x.Size()+y.Size())
	gc.SetLogger(logging.ZerologOf(a.Logger))
	memCollector := metrics.NewMemoryCollector()
	before := memCollector.Snapshot()

	var spin cli.Spinner = cli.NewSpinner(out, " evaluating...")
	if a.Config.Quiet {
		spin = cli.NewSpinner(io.Discard, "")
	}

	var ev evaluation
	gc.Begin()
	cli.WithSpinner(spin, func() {
		ev, err = a.evaluate(ctx, mult, x, y, strategies)
	})
	gc.End()
	if err != nil {
		return err
	}
	if a.Config.Round > 0 && ev.result.Operation != config.OpCmp {
		ev.result.Value = ev.result.Value.Round(a.Config.Round)
	}

	a.Logger.Debug("evaluation finished",
		logging.String("op", a.Config.Operation),
		logging.String("strategy", ev.result.Strategy),
		logging.Int("result_limbs", ev.result.Value.Size()),
		logging.Float64("seconds", ev.result.Duration.Seconds()),
	)

	var mismatch error
	if len(ev.runs) > 1 {
		mismatch = checkRuns(ev.runs)
		if !a.Config.Quiet {
			cli.DisplayComparisonTable(out, ev.runs)
		}
	}
	if mismatch != nil {
		return mismatch
	}

	if !a.Config.Quiet {
		fmt.Fprintln(out)
	}
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
	}
	if err := cli.DisplayResultWithConfig(out, ev.result, outputCfg); err != nil {
		return apperrors.WrapError(err, "saving result")
	}

	if a.Config.Details && !a.Config.Quiet {
		var gcStats *memory.GCStats
		if gc.Active() {
			s := gc.Stats()
			gcStats = &s
		}
		cli.DisplayMemoryStats(out, memCollector.Snapshot().Since(before), gcStats)
	}
	if a.Config.Metrics && !a.Config.Quiet {
		summary, err := collector.Summary()
		if err != nil {
			return apperrors.WrapError(err, "reading metrics")
		}
		cli.DisplayMetrics(out, summary)
	}
	return nil
}

// operands parses the decimal operands, generating random ones for those
// left empty when -random-limbs is set.
func (a *Application) operands() (biguint.Value, biguint.Value, error) {
	r := rand.New(rand.NewPCG(a.Config.Seed, a.Config.Seed^0x9e3779b97f4a7c15))
	parse := func(name, s string) (biguint.Value, error) {
		if s == "" {
			a.Logger.Debug("random operand generated",
				logging.String("operand", name),
				logging.Int("limbs", a.Config.RandomLimbs),
				logging.Uint64("seed", a.Config.Seed),
			)
			return randomValue(r, a.Config.RandomLimbs), nil
		}
		v, err := biguint.Parse(s)
		if err != nil {
			return biguint.Value{}, apperrors.ValidationError{Field: name, Message: err.Error()}
		}
		return v, nil
	}
	x, err := parse("A", a.Config.A)
	if err != nil {
		return biguint.Value{}, biguint.Value{}, err
	}
	y, err := parse("B", a.Config.B)
	if err != nil {
		return biguint.Value{}, biguint.Value{}, err
	}
	return x, y, nil
}

// randomValue returns a value of exactly n limbs (zero when n <= 0).
func randomValue(r *rand.Rand, n int) biguint.Value {
	if n <= 0 {
		return biguint.Zero()
	}
	limbs := make([]biguint.Limb, n)
	for i := range limbs {
		limbs[i] = r.Uint64N(biguint.Base)
	}
	limbs[n-1] = 1 + r.Uint64N(biguint.MaxLimb)
	return biguint.FromLimbs(limbs...)
}

// strategies returns the multiplication strategies to run.
func (a *Application) strategies() ([]biguint.Strategy, error) {
	if a.Config.Algo == config.AlgoAll {
		return biguint.Strategies(), nil
	}
	s, err := biguint.ParseStrategy(a.Config.Algo)
	if err != nil {
		return nil, apperrors.ValidationError{Field: "algo", Message: err.Error()}
	}
	return []biguint.Strategy{s}, nil
}

// evaluate runs the configured operation. The arithmetic itself cannot be
// interrupted; when ctx ends first the work is abandoned and a context
// error is returned.
func (a *Application) evaluate(ctx context.Context, mult *biguint.Multiplier, x, y biguint.Value, strategies []biguint.Strategy) (evaluation, error) {
	done := make(chan evaluation, 1)
	errc := make(chan error, 1)
	go func() {
		ev, err := a.compute(ctx, mult, x, y, strategies)
		if err != nil {
			errc <- err
			return
		}
		done <- ev
	}()

	select {
	case ev := <-done:
		return ev, nil
	case err := <-errc:
		return evaluation{}, a.contextError(err)
	case <-ctx.Done():
		return evaluation{}, a.contextError(ctx.Err())
	}
}

// contextError turns an expired deadline into a TimeoutError naming the
// operation and limit. Other errors, cancellation included, pass through.
func (a *Application) contextError(err error) error {
	if apperrors.IsContextError(err) && errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: a.Config.Operation, Limit: a.Config.Timeout}
	}
	return err
}

func (a *Application) compute(ctx context.Context, mult *biguint.Multiplier, x, y biguint.Value, strategies []biguint.Strategy) (evaluation, error) {
	op := a.Config.Operation
	start := time.Now()
	switch op {
	case config.OpAdd:
		return single(op, biguint.AddShifted(x, y, a.Config.Shift), start), nil
	case config.OpSub:
		return single(op, biguint.SubShifted(x, y, a.Config.Shift), start), nil
	case config.OpCmp:
		ev := single(op, biguint.Value{}, start)
		ev.result.Cmp = biguint.Compare(x, y)
		return ev, nil
	case config.OpMul:
		return a.multiply(ctx, mult, x, y, strategies)
	}
	return evaluation{}, apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", op)}
}

func single(op string, v biguint.Value, start time.Time) evaluation {
	return evaluation{result: cli.Result{Operation: op, Value: v, Duration: time.Since(start)}}
}

// multiply runs every requested strategy concurrently. The first strategy
// is the reference for the cross-check and provides the reported result.
func (a *Application) multiply(ctx context.Context, mult *biguint.Multiplier, x, y biguint.Value, strategies []biguint.Strategy) (evaluation, error) {
	products := make([]biguint.Value, len(strategies))
	runs := make([]cli.StrategyRun, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, span := tracer.Start(gctx, "bigcalc.mul", trace.WithAttributes(attribute.String("bigcalc.strategy", s.String())))
			defer span.End()

			start := time.Now()
			products[i] = mult.MulWith(s, x, y)
			runs[i] = cli.StrategyRun{Name: s.String(), Duration: time.Since(start), Match: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return evaluation{}, err
	}

	for i := 1; i < len(products); i++ {
		runs[i].Match = biguint.IsEqual(products[i], products[0])
	}

	strategy := strategies[0]
	if strategy == biguint.StrategyAuto {
		strategy = mult.Thresholds().Select(x, y)
	}
	return evaluation{
		result: cli.Result{
			Operation: config.OpMul,
			Value:     products[0],
			Strategy:  strategy.String(),
			Duration:  runs[0].Duration,
		},
		runs: runs,
	}, nil
}

// checkRuns returns a MismatchError when any run disagrees with the first.
func checkRuns(runs []cli.StrategyRun) error {
	var mismatched []string
	for _, run := range runs[1:] {
		if !run.Match {
			mismatched = append(mismatched, run.Name)
		}
	}
	if len(mismatched) == 0 {
		return nil
	}
	return apperrors.MismatchError{Reference: runs[0].Name, Mismatched: mismatched}
}

func (a *Application) reportError(err error) {
	code := apperrors.ExitCode(err)
	a.Logger.Debug("evaluation failed", logging.Err(err), logging.Int("exit_code", code))
	if apperrors.IsContextError(err) {
		fmt.Fprintf(a.ErrWriter, "Evaluation canceled.\n")
		return
	}
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
}
