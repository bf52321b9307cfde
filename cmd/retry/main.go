package main

import (
	"context"
	"os"

	"github.com/utkarsh5026/retry/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], cli.StdStreams()))
}
