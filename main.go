// Command justify aligns text flush to both margins at a fixed width.
package main

import "github.com/gaurav-prasanna/justify/cmd"

func main() {
	cmd.Execute()
}
