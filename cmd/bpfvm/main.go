package main

import (
	"os"

	"github.com/spf13/cobra"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bpfvm",
		Short: "Execute eBPF bytecode in a userspace virtual machine",
	}

	c.AddCommand(
		runCmd(),
		inspectCmd(),
	)

	return c
}
