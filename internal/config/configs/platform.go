package configs

// Funding configures the contribution ledger. MinContribution is the
// smallest accepted deposit in the smallest currency unit; it is stamped
// onto events at creation.
type Funding struct {
	MinContribution int64 `env:"MIN_CONTRIBUTION" envDefault:"100"`
}

// Platform identifies the platform's own account. It is the only caller
// allowed to withdraw the platform share of event profits, and the
// recipient of that payout.
type Platform struct {
	Account string `env:"ACCOUNT" envDefault:"gatherfi-platform"`
}

// Governance configures budget voting. QuorumBps is the quorum fraction
// in basis points of the event's raised amount; a budget approves once a
// strict majority holds and the combined tally reaches this fraction.
// The exact intended quorum rule is an open question upstream, which is
// why it is configuration rather than a constant.
type Governance struct {
	QuorumBps int64 `env:"QUORUM_BPS" envDefault:"5000"`
}
