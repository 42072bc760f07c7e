// Package node submits contract transactions to a node's REST API.
//
// A deployment reads a transaction file, embeds the compiled module and
// posts it to the sign-and-broadcast endpoint:
//
//	cfg, err := node.LoadTxConfig("deploy.json")
//	tx, err := cfg.CreateContract()
//	tx.Prepare(bytecode)
//	resp, err := cfg.Client().SignAndBroadcast(ctx, tx)
package node
