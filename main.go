// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/wizardswithguns/wwg-launcher/cmd/wwg"

func main() {
	cmd.Execute()
}
