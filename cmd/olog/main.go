package main

import (
	"context"

	"obsidian-logging/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
