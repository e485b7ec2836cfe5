package main

import "github.com/devshop/devapp/internal/cli"

func main() {
	cli.Execute()
}
