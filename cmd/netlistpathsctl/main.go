// Command netlistpathsctl is a CLI for querying data-flow paths in an
// elaborated hardware netlist: path existence, waypoint queries,
// fan-out/fan-in, and signal/register listings.
package main

func main() {
	execute()
}
