// Package scripts holds the read-only Cadence scripts the bot executes.
package scripts

import (
	_ "embed"
)

var (
	// FlowPrice takes the oracle address and returns [UFix64] with the USD price first
	//go:embed flowprice.cdc
	FlowPrice []byte

	//go:embed topshot.cdc
	TopShot []byte

	//go:embed hotwheels.cdc
	HotWheels []byte

	//go:embed pinnacle.cdc
	Pinnacle []byte

	//go:embed allday.cdc
	AllDay []byte
)
