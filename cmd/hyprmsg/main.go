// Package main is the entry point for hyprmsg.
package main

func main() {
	Execute()
}
