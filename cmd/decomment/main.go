package main

import "decomment/internal/cli"

func main() {
	cli.Execute()
}
