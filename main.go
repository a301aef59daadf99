// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/cwltool/cmd/cwltool"

func main() {
	cmd.Execute()
}
