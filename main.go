package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Dhahak-Amin/SatSolver/internal/dimacs"
	"github.com/Dhahak-Amin/SatSolver/internal/sat"
)

var log = logrus.New()

type config struct {
	instanceFile string
	gzipped      bool
	heuristic    string
	maxRestarts  int
	cpuProfile   string
	memProfile   string
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "satsolver [flags] instance.cnf",
		Short: "Decide satisfiability of a DIMACS CNF instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.instanceFile = args[0]

			if cfg.cpuProfile != "" {
				f, err := os.Create(cfg.cpuProfile)
				if err != nil {
					return fmt.Errorf("could not create cpu profile: %w", err)
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}

			if err := run(cfg); err != nil {
				return err
			}

			if cfg.memProfile != "" {
				f, err := os.Create(cfg.memProfile)
				if err != nil {
					return fmt.Errorf("could not create mem profile: %w", err)
				}
				defer f.Close()
				return pprof.WriteHeapProfile(f)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.gzipped, "gzip", false, "instance file is gzip-compressed")
	flags.StringVar(&cfg.heuristic, "heuristic", "weighted", "branching heuristic: weighted or first")
	flags.IntVar(&cfg.maxRestarts, "max-restarts", sat.DefaultMaxRestarts, "maximum number of Luby-scheduled restarts (ignored by --heuristic=first)")
	flags.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write a pprof CPU profile to this file")
	flags.StringVar(&cfg.memProfile, "memprofile", "", "write a pprof heap profile to this file")

	return cmd
}

func run(cfg *config) error {
	instance, err := dimacs.ParseDIMACS(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	s := sat.NewSolver(instance.Variables)
	if !dimacs.Instantiate(s, instance) {
		fmt.Println("c status:     proven UNSAT while loading clauses")
		return dimacs.WriteUnsat(os.Stdout)
	}

	fmt.Printf("c variables:  %d\n", instance.Variables)
	fmt.Printf("c clauses:    %d\n", len(instance.Clauses))

	log.WithFields(logrus.Fields{
		"variables": instance.Variables,
		"clauses":   len(instance.Clauses),
		"heuristic": cfg.heuristic,
	}).Info("starting search")

	start := time.Now()
	var solved bool
	switch cfg.heuristic {
	case "first":
		solved = s.SolveFirstVariable()
	case "weighted":
		solved = s.SolveWithRestarts(cfg.maxRestarts)
	default:
		return fmt.Errorf("unknown heuristic %q (want weighted or first)", cfg.heuristic)
	}
	elapsed := time.Since(start)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	log.WithField("elapsed", elapsed).Info("search finished")

	if solved {
		fmt.Println("c status:     SATISFIABLE")
		return dimacs.WriteSolution(os.Stdout, s.GetUnitLiterals())
	}
	fmt.Println("c status:     UNSATISFIABLE")
	return dimacs.WriteUnsat(os.Stdout)
}

func main() {
	log.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
