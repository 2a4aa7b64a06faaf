// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/portkit/portkit/cmd/portkit"

func main() {
	cmd.Execute()
}
