package main

import "bounty-ledger.com/bounty-ledger/cmd"

func main() {
	cmd.Execute()
}
