// SPDX-License-Identifier: MPL-2.0

// rustup-prompt prints the rustup toolchain override for the current directory.
package main

import cmd "github.com/rustup-prompt/rustup-prompt/cmd/rustup-prompt"

func main() {
	cmd.Execute()
}
