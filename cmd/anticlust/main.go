// Package main is the entry point for the anticlust CLI, a thin JSON-driven
// harness around the anticluster package's Variance and Diversity entry
// points.
package main

func main() {
	Execute()
}
