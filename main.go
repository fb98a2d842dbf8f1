package main

import "github.com/vsphere-tmm/irsa-jwks/cmd"

func main() {
	cmd.Execute()
}
