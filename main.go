package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"runtime/pprof"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/satlab/tern/parsers"
	"github.com/satlab/tern/sat"
)

var flagVerbosity = flag.Int(
	"verb",
	1,
	"verbosity level (0=silent, 1=some, 2=more)",
)

var flagCPULimit = flag.Int(
	"cpu-lim",
	0,
	"limit on solving time in seconds (0 = no limit)",
)

var flagMemLimit = flag.Int(
	"mem-lim",
	0,
	"soft limit on memory usage in megabytes (0 = no limit)",
)

var flagVarDecay = flag.Float64(
	"var-decay",
	sat.DefaultOptions.VariableDecay,
	"the variable activity decay factor",
)

var flagClaDecay = flag.Float64(
	"cla-decay",
	sat.DefaultOptions.ClauseDecay,
	"the clause activity decay factor",
)

var flagLuby = flag.Bool(
	"luby",
	sat.DefaultOptions.LubyRestart,
	"use the Luby restart sequence",
)

var flagGCFrac = flag.Float64(
	"gc-frac",
	sat.DefaultOptions.GCFrac,
	"the fraction of wasted memory allowed before a garbage collection is triggered",
)

var flagMaxConflicts = flag.Int64(
	"max-conflicts",
	-1,
	"maximum number of conflicts allowed to solve the problem (-1 = no maximum)",
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

type config struct {
	instanceFile string
	outputFile   string
	verbosity    int
	cpuLimit     int
	memLimit     int
	maxConflicts int64
	memProfile   bool
	cpuProfile   bool
}

func parseConfig() *config {
	flag.Parse()
	return &config{
		instanceFile: flag.Arg(0), // empty means stdin
		outputFile:   flag.Arg(1),
		verbosity:    *flagVerbosity,
		cpuLimit:     *flagCPULimit,
		memLimit:     *flagMemLimit,
		maxConflicts: *flagMaxConflicts,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}
}

func solverOptions(cfg *config) sat.Options {
	options := sat.DefaultOptions
	options.VariableDecay = *flagVarDecay
	options.ClauseDecay = *flagClaDecay
	options.LubyRestart = *flagLuby
	options.GCFrac = *flagGCFrac
	options.Verbosity = cfg.verbosity
	return options
}

func loadInstance(cfg *config, s *sat.Solver) error {
	if cfg.instanceFile == "" {
		if cfg.verbosity >= 1 {
			fmt.Println("c reading from standard input, use --help for help")
		}
		return parsers.LoadDIMACSReader(os.Stdin, s)
	}
	gzipped := strings.HasSuffix(cfg.instanceFile, ".gz")
	return parsers.LoadDIMACS(cfg.instanceFile, gzipped, s)
}

func printStats(s *sat.Solver, elapsed time.Duration) {
	secs := elapsed.Seconds()
	fmt.Printf("c restarts     : %d\n", s.Starts)
	fmt.Printf("c conflicts    : %-12d (%.0f /sec)\n", s.Conflicts, float64(s.Conflicts)/secs)
	fmt.Printf("c decisions    : %-12d (%.0f /sec)\n", s.Decisions, float64(s.Decisions)/secs)
	fmt.Printf("c propagations : %-12d (%.0f /sec)\n", s.Propagations, float64(s.Propagations)/secs)
	fmt.Printf("c reductions   : %-12d (%d clauses removed)\n", s.Reductions, s.RemovedClauses)
	fmt.Printf("c collections  : %d\n", s.Collections)
	fmt.Printf("c time         : %.3f s\n", secs)
}

func writeResult(cfg *config, s *sat.Solver, status sat.LBool) error {
	if cfg.outputFile == "" {
		return nil
	}
	f, err := os.Create(cfg.outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	switch status {
	case sat.True:
		sb := strings.Builder{}
		sb.WriteString("SAT\n")
		for v, b := range s.Model {
			if v > 0 {
				sb.WriteByte(' ')
			}
			if !b {
				sb.WriteByte('-')
			}
			fmt.Fprintf(&sb, "%d", v+1)
		}
		sb.WriteString(" 0\n")
		_, err = f.WriteString(sb.String())
	case sat.False:
		_, err = f.WriteString("UNSAT\n")
	default:
		_, err = f.WriteString("INDET\n")
	}
	return err
}

func run(cfg *config) (sat.LBool, error) {
	s := sat.NewSolver(solverOptions(cfg))

	// Until solving starts, an interrupt exits right away. Afterwards, the
	// first arrival asks the solver to stop gracefully and a second one
	// forces the exit.
	solving := atomic.Bool{}
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGXCPU)
	go func() {
		<-sigCh
		if !solving.Load() {
			fmt.Println("\n*** INTERRUPTED ***")
			os.Exit(0)
		}
		s.Interrupt()
		<-sigCh
		fmt.Println("\n*** INTERRUPTED ***")
		os.Exit(1)
	}()

	if err := loadInstance(cfg, s); err != nil {
		return sat.Unknown, fmt.Errorf("could not parse instance: %w", err)
	}

	if cfg.verbosity >= 1 {
		fmt.Printf("c variables:  %d\n", s.NumVariables())
		fmt.Printf("c clauses:    %d\n", s.NumClauses())
	}

	if cfg.maxConflicts >= 0 {
		s.SetConflictBudget(cfg.maxConflicts)
	}
	if cfg.cpuLimit > 0 {
		time.AfterFunc(time.Duration(cfg.cpuLimit)*time.Second, s.Interrupt)
	}
	if cfg.memLimit > 0 {
		debug.SetMemoryLimit(int64(cfg.memLimit) << 20)
	}

	solving.Store(true)
	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	if cfg.verbosity >= 1 {
		printStats(s, elapsed)
	}
	if err := writeResult(cfg, s, status); err != nil {
		return status, fmt.Errorf("could not write result: %w", err)
	}

	return status, nil
}

func main() {
	cfg := parseConfig()

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}

	status, err := run(cfg)
	if cfg.cpuProfile {
		pprof.StopCPUProfile()
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		os.Exit(10)
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
		os.Exit(20)
	default:
		fmt.Println("s INDETERMINATE")
		os.Exit(0)
	}
}
