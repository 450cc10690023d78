// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "fcpath/cmd/fcpath"
)

func main() {
	cmd.Execute()
}
