package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/armon/go-metrics"
	"github.com/dylandreimerink/gobpfvm/emulator"
	"github.com/dylandreimerink/gobpfvm/internal/config"
	"github.com/dylandreimerink/gobpfvm/internal/progfile"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var (
	flagConfig    string
	flagMaxSteps  uint64
	flagPacket    string
	flagSnapshot  string
	flagStats     bool
	flagVerbosity int
)

func runCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "run {bytecode file}",
		Short: "Run a program until it halts, faults or is aborted",
		Long: "Run a program until it halts, faults or is aborted. The bytecode file contains raw little-endian " +
			"instructions or the same bytes as hex text. The register dump is printed afterwards.",
		Args: cobra.ExactArgs(1),
		RunE: runProgram,
	}

	f := c.Flags()
	f.StringVarP(&flagConfig, "config", "c", "", "Path to a bpfvm.toml settings file, flags override its values")
	f.Uint64Var(&flagMaxSteps, "max-steps", 0, "Abort after executing this many instructions, 0 means unlimited")
	f.StringVar(&flagPacket, "packet", "", "File used as packet buffer by the LDABS and LDIND instructions")
	f.StringVar(&flagSnapshot, "snapshot", "", "Write a CBOR snapshot of the result to this file")
	f.BoolVar(&flagStats, "stats", false, "Print the run metrics after execution")
	f.CountVarP(&flagVerbosity, "verbose", "v", "Increase log verbosity, -vv traces every instruction")

	return c
}

// loadConfig reads the settings file if one was given and applies the flags which were explicitly set on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("max-steps") {
		cfg.MaxSteps = flagMaxSteps
	}
	if f.Changed("packet") {
		cfg.PacketFile = flagPacket
	}
	if f.Changed("snapshot") {
		cfg.Snapshot = flagSnapshot
	}
	if f.Changed("stats") {
		cfg.Stats = flagStats
	}
	if f.Changed("verbose") {
		cfg.Verbosity = flagVerbosity
	}

	return cfg, nil
}

func runProgram(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	commonlog.Configure(cfg.Verbosity, nil)

	var sink *metrics.InmemSink
	if cfg.Stats {
		sink = metrics.NewInmemSink(time.Minute, time.Minute)
		conf := metrics.DefaultConfig("")
		conf.EnableHostname = false
		conf.EnableRuntimeMetrics = false
		if _, err = metrics.NewGlobal(conf, sink); err != nil {
			return fmt.Errorf("setup metrics: %w", err)
		}
	}

	bytecode, err := progfile.Read(args[0])
	if err != nil {
		return err
	}

	prog, err := emulator.LoadProgram(bytecode)
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}

	var packet []byte
	if cfg.PacketFile != "" {
		packet, err = os.ReadFile(cfg.PacketFile)
		if err != nil {
			return fmt.Errorf("read packet: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	vm := emulator.NewVM(prog, cfg.VMSettings(packet))
	res := vm.RunContext(ctx)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Program %x (%d instructions)\n", prog.Digest(), prog.Len())
	fmt.Fprint(out, vm)

	if cfg.Snapshot != "" {
		snap, err := res.MarshalSnapshot()
		if err != nil {
			return err
		}

		if err = os.WriteFile(cfg.Snapshot, snap, 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	if sink != nil {
		printStats(out, sink)
	}

	if res.State != emulator.StateHalted {
		return fmt.Errorf("program %s: %w", res.State, res.Err)
	}

	return nil
}

// printStats prints all counters and timers collected by sink, sorted by name. Counters are summed over all
// intervals since a run may cross an interval boundary.
func printStats(w io.Writer, sink *metrics.InmemSink) {
	counters := make(map[string]float64)
	timers := make(map[string]float64)
	for _, intv := range sink.Data() {
		intv.RLock()
		for name, val := range intv.Counters {
			counters[name] += val.Sum
		}
		for name, val := range intv.Samples {
			timers[name] = val.AggregateSample.Mean()
		}
		intv.RUnlock()
	}

	names := make([]string, 0, len(counters)+len(timers))
	for name := range counters {
		names = append(names, name)
	}
	for name := range timers {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Stats:")
	for _, name := range names {
		if v, ok := counters[name]; ok {
			fmt.Fprintf(w, " %s: %g\n", name, v)
			continue
		}
		fmt.Fprintf(w, " %s: %.3fms\n", name, timers[name])
	}
}
