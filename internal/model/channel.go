package model

// Channel identifies one of the seven transaction channels.
// Keep these values stable; they appear in CSV output and parameter input
// names are derived from them.
type Channel string

const (
	ChannelACHIn     Channel = "ACHin"
	ChannelRTPIn     Channel = "RTPin"
	ChannelWireIn    Channel = "WireIn"
	ChannelACHOut    Channel = "ACHout"
	ChannelRTPOut    Channel = "RTPout"
	ChannelWireOut   Channel = "WireOut"
	ChannelDebitCard Channel = "DebitCard"
)

// InflowChannels and OutflowChannels fix the evaluation order of the
// cascade and of every per-channel output column.
var (
	InflowChannels  = []Channel{ChannelACHIn, ChannelRTPIn, ChannelWireIn}
	OutflowChannels = []Channel{ChannelACHOut, ChannelRTPOut, ChannelWireOut, ChannelDebitCard}
)

// PerActiveInput names the parameter holding this channel's transactions
// per active account per month.
func (c Channel) PerActiveInput() string { return string(c) + "PerActive" }

// RateInput names the dollars-per-transaction parameter. Consulted for
// inflow channels only.
func (c Channel) RateInput() string { return string(c) + "Rate" }

// ShareInput names the share-of-total-inflows parameter. Consulted for
// outflow channels only.
func (c Channel) ShareInput() string { return string(c) + "Share" }
