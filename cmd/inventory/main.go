// Package main is the entry point for the inventory console.
package main

import "github.com/rogerio-castellano/inventory-console/cmd/inventory/cmd"

func main() {
	cmd.Execute()
}
