// SPDX-License-Identifier: MPL-2.0

package main

import cmd "apexsupport/cmd/apexinfo"

func main() {
	cmd.Execute()
}
