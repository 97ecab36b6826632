package main

import "s3-client/cmd"

func main() {
	cmd.Execute()
}
