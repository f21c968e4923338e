// Command skyroute finds the fastest and the cheapest flight route between two
// airports.
//
// Without --from/--to it asks for both on standard input using the numbered airport
// menu of the dataset; an invalid selection falls back to the dataset defaults.
//
//	skyroute                                # interactive, embedded reference network
//	skyroute route --from MAA --to DEL      # both metrics
//	skyroute route --metric price --data net.yaml --from A --to B
//	skyroute dot --from DEL --to MAA > net.dot
//	skyroute distances --from DEL --metric time
//	skyroute reach --from MAA --max-flights 1
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
