package main

import "github.com/mcoot/reversi-go/internal/cli"

func main() {
	cli.Execute()
}
