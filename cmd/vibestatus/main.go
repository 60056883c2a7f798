package main

import "github.com/Vladimirbabic/vibestatus/internal/cli"

func main() {
	cli.Execute()
}
