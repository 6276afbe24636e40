// Command points drives rail junctions described in a YAML layout file.
package main

func main() {
	Execute()
}
