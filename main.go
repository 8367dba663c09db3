package main

import "dtek-shutdowns-monitor/internal/cmd"

func main() {
	cmd.Execute()
}
