// box-client is a command-line client for the Box file-storage service.
// All behavior lives in the cmd package; this is only the entrypoint.
package main

import "github.com/boxtools/box-client/cmd"

func main() {
	cmd.Execute()
}
