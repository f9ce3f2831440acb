package main

import "jobportal/cli"

func main() {
	cli.Execute()
}
