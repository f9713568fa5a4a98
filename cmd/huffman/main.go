package main

import "github.com/chronos-tachyon/huffmantree/internal/cli"

func main() { cli.Execute() }
