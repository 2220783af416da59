package main

import (
	"fmt"
	"os"

	"github.com/dylandreimerink/gobpfvm/ebpf"
	"github.com/dylandreimerink/gobpfvm/emulator"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect {snapshot file}",
		Short: "Print the result stored in a snapshot written by run --snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectSnapshot,
	}
}

func inspectSnapshot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	res, err := emulator.UnmarshalSnapshot(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, v := range res.Registers {
		fmt.Fprintf(out, "%3s: 0x%016x (s%d / u%d)\n", ebpf.Register(i), uint64(v), v, uint64(v))
	}

	fmt.Fprintf(out, "State: %s\n", res.State)
	switch res.State {
	case emulator.StateHalted:
		fmt.Fprintf(out, "Exit code: %d\n", res.ExitCode)
	case emulator.StateFaulted, emulator.StateAborted:
		fmt.Fprintf(out, "Error: %s\n", res.Err)
	}
	fmt.Fprintf(out, "Steps: %d\n", res.Steps)

	used := 0
	for _, b := range res.Memory {
		if b != 0 {
			used++
		}
	}
	fmt.Fprintf(out, "Memory: %d bytes, %d non-zero\n", len(res.Memory), used)

	return nil
}
