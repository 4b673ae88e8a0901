package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cosmos/avl-bench/core"
	"github.com/cosmos/avl-bench/core/metrics"
)

func main() {
	root := core.RootCommand()
	root.AddCommand(
		treeCommand(prometheus.DefaultRegisterer, metrics.Default),
		dotCommand(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}
