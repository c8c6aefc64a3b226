package main

import (
	"fmt"
	"os"

	"github.com/TheSnakeWitcher/vesting-manager/cmd/vestingd/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
