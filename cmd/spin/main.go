package main

import "github.com/marlot/spin/internal/cli"

func main() {
	cli.Execute()
}
