package main

import "github.com/MyriadColors/repl-space-miner-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
