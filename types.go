package fury

// Request and response records for the FURY API. Field names in json
// tags are the wire contract of the remote service and must not be
// altered. Optional fields are pointers or omitempty strings so that
// unset values are omitted from the payload rather than sent as null;
// the server applies its own defaults to absent fields.

// TokenMetadata describes a token being created. The social fields are
// optional and serialize as empty strings when unset, matching the
// server's expected shape.
type TokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	File        string `json:"file"` // Token logo image URL
	Telegram    string `json:"telegram"`
	Twitter     string `json:"twitter"`
	Website     string `json:"website"`
}

// TokenCreationConfig carries the metadata and default per-wallet SOL
// amount for a token creation.
type TokenCreationConfig struct {
	Metadata         TokenMetadata `json:"metadata"`
	DefaultSolAmount float64       `json:"defaultSolAmount"`
}

// tokenCreationEnvelope is the nesting the API expects for the config
// field of a create request.
type tokenCreationEnvelope struct {
	TokenCreation TokenCreationConfig `json:"tokenCreation"`
}

// Recipient is one (address, amount) pair for a wallet distribution.
// Amount is a decimal string to avoid float precision loss on the wire.
type Recipient struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// TxOptions are per-transaction submission options.
type TxOptions struct {
	SkipPreflight       bool   `json:"skipPreflight"`
	PreflightCommitment string `json:"preflightCommitment"`
}

// SignedTransaction is a fully signed, serialized transaction ready for
// submission, with optional submission options.
type SignedTransaction struct {
	Transaction string     `json:"transaction"`
	Options     *TxOptions `json:"options,omitempty"`
}

// BuyRequest holds the inputs for Tokens.Buy. Protocol defaults to
// ProtocolAuto when empty.
type BuyRequest struct {
	WalletAddresses  []string `json:"walletAddresses"`
	TokenAddress     string   `json:"tokenAddress"`
	SolAmount        float64  `json:"solAmount"`
	Protocol         Protocol `json:"protocol"`
	AffiliateAddress string   `json:"affiliateAddress,omitempty"`
	AffiliateFee     string   `json:"affiliateFee,omitempty"` // percentage as string, e.g. "2" for 2%
	JitoTipLamports  *int64   `json:"jitoTipLamports,omitempty"`
	SlippageBps      *int64   `json:"slippageBps,omitempty"`
}

// SellRequest holds the inputs for Tokens.Sell. Percentage defaults to
// 100 when zero; Protocol defaults to ProtocolAuto when empty.
type SellRequest struct {
	WalletAddresses  []string `json:"walletAddresses"`
	TokenAddress     string   `json:"tokenAddress"`
	Percentage       float64  `json:"percentage"`
	Protocol         Protocol `json:"protocol"`
	AffiliateAddress string   `json:"affiliateAddress,omitempty"`
	AffiliateFee     string   `json:"affiliateFee,omitempty"`
	JitoTipLamports  *int64   `json:"jitoTipLamports,omitempty"`
	SlippageBps      *int64   `json:"slippageBps,omitempty"`
}

// TransferRequest holds the inputs for Tokens.Transfer. An empty
// TokenAddress transfers native SOL.
type TransferRequest struct {
	SenderPublicKey string `json:"senderPublicKey"`
	Receiver        string `json:"receiver"`
	TokenAddress    string `json:"tokenAddress"`
	Amount          string `json:"amount"`
}

// CreateRequest holds the inputs for Tokens.Create. Amounts is the SOL
// amount spent per wallet and must match WalletAddresses in length.
type CreateRequest struct {
	WalletAddresses []string
	MintPubkey      string
	Config          TokenCreationConfig
	Amounts         []float64
}

// createPayload is the wire form of a create request, with the config
// nested under tokenCreation.
type createPayload struct {
	WalletAddresses []string              `json:"walletAddresses"`
	MintPubkey      string                `json:"mintPubkey"`
	Config          tokenCreationEnvelope `json:"config"`
	Amounts         []float64             `json:"amounts"`
}

// BurnRequest holds the inputs for Tokens.Burn.
type BurnRequest struct {
	WalletPublicKey string `json:"walletPublicKey"`
	TokenAddress    string `json:"tokenAddress"`
	Amount          string `json:"amount"`
}

// CleanerRequest holds the inputs for Tokens.Cleaner, which executes a
// paired sell and buy server-side.
type CleanerRequest struct {
	SellerAddress  string  `json:"sellerAddress"`
	BuyerAddress   string  `json:"buyerAddress"`
	TokenAddress   string  `json:"tokenAddress"`
	SellPercentage float64 `json:"sellPercentage"`
	BuyPercentage  float64 `json:"buyPercentage"`
}

// SendRequest holds the inputs for Transactions.Send. UseRPC toggles
// direct RPC submission instead of the bundle service.
type SendRequest struct {
	Transactions []SignedTransaction `json:"transactions"`
	UseRPC       bool                `json:"useRpc"`
}

// PnLRequest holds the inputs for Analytics.PnL. Addresses is a
// comma-separated list of wallet addresses, matching the API contract.
type PnLRequest struct {
	Addresses        string
	TokenAddress     string
	IncludeTimestamp bool
}

// pnlPayload is the wire form of a PnL request.
type pnlPayload struct {
	Addresses    string      `json:"addresses"`
	TokenAddress string      `json:"tokenAddress,omitempty"`
	Options      *pnlOptions `json:"options,omitempty"`
}

type pnlOptions struct {
	IncludeTimestamp bool `json:"includeTimestamp"`
}

// DistributeRequest holds the inputs for Wallets.Distribute.
type DistributeRequest struct {
	Sender     string      `json:"sender"`
	Recipients []Recipient `json:"recipients"`
}

// ConsolidateRequest holds the inputs for Wallets.Consolidate.
// Percentage defaults to 100 when zero; an empty TokenAddress
// consolidates native SOL.
type ConsolidateRequest struct {
	SourceAddresses []string `json:"sourceAddresses"`
	ReceiverAddress string   `json:"receiverAddress"`
	Percentage      float64  `json:"percentage"`
	TokenAddress    string   `json:"tokenAddress,omitempty"`
}

// HealthResponse is the parsed payload of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// TransactionResponse is the result of token and wallet operations: the
// serialized transactions produced server-side, ready for signing.
type TransactionResponse struct {
	Transactions []string `json:"transactions"`
}

// SendResponse is the result of submitting signed transactions: the
// resulting on-chain signatures.
type SendResponse struct {
	Results []string `json:"results"`
}

// GenerateMintResponse describes a freshly generated mint keypair.
type GenerateMintResponse struct {
	Pubkey    string `json:"pubkey"`
	SecretKey string `json:"secretKey,omitempty"`
}

// PnLResult is the server-computed profit and loss report. The exact
// shape is defined by the API and varies with the requested options, so
// it is surfaced as decoded JSON keyed by wallet address.
type PnLResult map[string]any
