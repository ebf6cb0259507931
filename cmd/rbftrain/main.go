// Package main trains the RBF network on sin(x)/x * sin(y)/y from the
// terminal, then evaluates one point and reports the fit over a test grid.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/FlavioCFOliveira/rbfnet/internal/net"
)

func main() {
	cfg := net.DefaultConfig()

	flag.IntVar(&cfg.NeuronCount, "neurons", cfg.NeuronCount, "number of RBF neurons")
	flag.Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "learning rate")
	flag.Float64Var(&cfg.StopThreshold, "stop", cfg.StopThreshold, "stop once the mean error falls below this")
	flag.Float64Var(&cfg.GridStep, "step", cfg.GridStep, "training grid step over [-3, 3]")
	flag.IntVar(&cfg.MaxSteps, "max-steps", 200000, "give up after this many steps (0 = never)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "initialization seed (0 = clock)")
	interval := flag.Duration("interval", 0, "pause between training steps")
	logEvery := flag.Int("log-every", 1000, "print progress every N steps (0 = off)")
	csvOut := flag.Bool("csv", false, "stream step,epoch,error records to stdout")
	x := flag.Float64("x", 0, "x of the point to evaluate after training")
	y := flag.Float64("y", 0, "y of the point to evaluate after training")
	testStep := flag.Float64("test-step", 0.1, "test grid step over [-3, 3]")
	check := flag.Bool("check", false, "verify analytic gradients against finite differences before training")
	flag.Parse()

	callbacks := []net.Callback{net.ParamLogger{}}
	if *csvOut {
		callbacks = append(callbacks, net.NewCSVLogger(os.Stdout))
	} else {
		callbacks = append(callbacks, net.Logger{Interval: *logEvery})
	}
	network := net.New(callbacks...)

	fmt.Println("=== RBF Network for sin(x)/x * sin(y)/y ===")
	fmt.Printf("Neurons: %d, learning rate: %g, stop threshold: %g, grid step: %g\n",
		cfg.NeuronCount, cfg.LearningRate, cfg.StopThreshold, cfg.GridStep)

	if err := network.Start(cfg); err != nil {
		log.Fatalf("Failed to start training: %v", err)
	}
	fmt.Printf("Training samples: %d\n", len(network.Dataset()))

	if *check {
		worst := 0.0
		for _, s := range network.Dataset() {
			d, err := network.CheckGradients(s)
			if err != nil {
				log.Fatal(err)
			}
			if d > worst {
				worst = d
			}
		}
		fmt.Printf("Gradient check: max |analytic - numerical| = %.3e\n", worst)
	}

	// Ctrl-C is the manual stop
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	start := time.Now()
	res, err := network.Run(ctx, *interval)
	if err != nil && ctx.Err() == nil {
		log.Fatalf("Training failed: %v", err)
	}
	st := network.State()
	fmt.Printf("\nStopped (%s) after %d steps, epoch %d, error %.6f in %v\n",
		res.Reason, st.StepCount, st.Epoch, st.LastError, time.Since(start).Round(time.Millisecond))

	z, err := network.FindZ(*x, *y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nZ is found: %.6f\n", z.Output)
	fmt.Printf("Z must be: %.6f\n", z.Target)

	report, err := network.EvaluateGrid(net.GridMin, net.GridMax, *testStep)
	if err != nil {
		log.Fatalf("Failed to evaluate test grid: %v", err)
	}
	fmt.Printf("\nTest grid: %d points, RMSE %.6f, max |error| %.6f\n",
		len(report.Points), report.RMSE, report.MaxAbsError)

	h := network.History()
	if len(h.Errors) > 0 {
		fmt.Printf("Error curve: %d steps, range [%.6f, %.6f]\n", len(h.Errors), h.MinError, h.MaxError)
	}
}
